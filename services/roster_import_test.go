package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestMapping(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    ColumnMapping
	}{
		{
			"spanish headers",
			[]string{"Nombre", "Apellido", "Apodo"},
			ColumnMapping{FirstName: "Nombre", LastName: "Apellido", Nickname: "Apodo"},
		},
		{
			"english headers",
			[]string{"First Name", "Last Name", "Nickname"},
			ColumnMapping{FirstName: "First Name", LastName: "Last Name", Nickname: "Nickname"},
		},
		{
			"substring match is case-insensitive",
			[]string{"PRIMER_NOMBRE", "apellidos", "el apodo del jugador"},
			ColumnMapping{FirstName: "PRIMER_NOMBRE", LastName: "apellidos", Nickname: "el apodo del jugador"},
		},
		{
			"unmatched fields stay empty",
			[]string{"DNI", "Fecha"},
			ColumnMapping{},
		},
		{
			"fields match independently",
			[]string{"Apellido", "DNI"},
			ColumnMapping{LastName: "Apellido"},
		},
		{
			"first matching header wins",
			[]string{"nombre corto", "nombre completo"},
			ColumnMapping{FirstName: "nombre corto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestMapping(tt.headers))
		})
	}
}

func TestParseCSV(t *testing.T) {
	t.Run("rows keyed by header", func(t *testing.T) {
		headers, rows, err := ParseCSV(strings.NewReader("nombre,apellido\nJuan,Pérez\nLuz,Sosa\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"nombre", "apellido"}, headers)
		require.Len(t, rows, 2)
		assert.Equal(t, "Juan", rows[0]["nombre"])
		assert.Equal(t, "Sosa", rows[1]["apellido"])
	})

	t.Run("short rows pad missing cells", func(t *testing.T) {
		_, rows, err := ParseCSV(strings.NewReader("nombre,apellido\nJuan\n"))
		require.NoError(t, err)
		assert.Equal(t, "", rows[0]["apellido"])
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		_, _, err := ParseCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyCSV)
	})
}

func TestBuildRecords(t *testing.T) {
	mapping := ColumnMapping{FirstName: "nombre", LastName: "apellido", Nickname: "apodo"}

	t.Run("incomplete mapping rejects everything", func(t *testing.T) {
		rows := []map[string]string{{"nombre": "Juan", "apellido": "Pérez"}}
		_, _, err := BuildRecords(rows, ColumnMapping{FirstName: "nombre"})
		assert.ErrorIs(t, err, ErrMappingIncomplete)
	})

	t.Run("rows with blank required cells are dropped", func(t *testing.T) {
		rows := []map[string]string{
			{"nombre": "Juan", "apellido": "Pérez"},
			{"nombre": "", "apellido": "Sosa"},
			{"nombre": "Luz", "apellido": "Sosa"},
			{"nombre": "   ", "apellido": "Gómez"},
			{"nombre": "Mia", "apellido": "Ríos"},
		}
		records, dropped, err := BuildRecords(rows, mapping)
		require.NoError(t, err)
		assert.Len(t, records, 3)
		assert.Equal(t, 2, dropped)
	})

	t.Run("no valid rows fails without records", func(t *testing.T) {
		rows := []map[string]string{
			{"nombre": "", "apellido": "Pérez"},
			{"nombre": "Juan", "apellido": ""},
		}
		records, dropped, err := BuildRecords(rows, mapping)
		assert.ErrorIs(t, err, ErrNoValidRows)
		assert.Nil(t, records)
		assert.Equal(t, 2, dropped)
	})

	t.Run("nickname is optional and trimmed", func(t *testing.T) {
		rows := []map[string]string{
			{"nombre": "Juan", "apellido": "Pérez", "apodo": " Juancho "},
			{"nombre": "Luz", "apellido": "Sosa", "apodo": ""},
		}
		records, _, err := BuildRecords(rows, mapping)
		require.NoError(t, err)
		require.NotNil(t, records[0].Nickname)
		assert.Equal(t, "Juancho", *records[0].Nickname)
		assert.Nil(t, records[1].Nickname)
	})

	t.Run("names are trimmed and status defaults to active", func(t *testing.T) {
		rows := []map[string]string{{"nombre": " Juan ", "apellido": " Pérez "}}
		records, _, err := BuildRecords(rows, mapping)
		require.NoError(t, err)
		assert.Equal(t, "Juan", records[0].FirstName)
		assert.Equal(t, "Pérez", records[0].LastName)
		assert.Equal(t, "Activo", records[0].Status)
	})
}
