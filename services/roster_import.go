// services/roster_import.go - CSV roster import
package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/Maexgon/RoasterManager/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMappingIncomplete = errors.New("first name and last name columns must be mapped")
	ErrNoValidRows       = errors.New("no valid rows to import")
	ErrEmptyCSV          = errors.New("file has no header row")
	ErrDuplicatePlayers  = errors.New("file contains players that already exist")
)

const uniqueViolation = "23505"

// ColumnMapping names the CSV header feeding each player field. FirstName
// and LastName are required before an import may run.
type ColumnMapping struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
}

// Keyword sets for the auto-suggested mapping. Spanish and English
// spreadsheets both show up in practice.
var (
	firstNameKeywords = []string{"nombre", "first"}
	lastNameKeywords  = []string{"apellido", "last"}
	nicknameKeywords  = []string{"apodo", "nick"}
)

// SuggestMapping guesses which headers hold each player field by
// case-insensitive substring match, taking the first header that matches
// each keyword set. Fields are matched independently; an unmatched field
// stays empty for the user to pick by hand.
func SuggestMapping(headers []string) ColumnMapping {
	return ColumnMapping{
		FirstName: firstMatch(headers, firstNameKeywords),
		LastName:  firstMatch(headers, lastNameKeywords),
		Nickname:  firstMatch(headers, nicknameKeywords),
	}
}

func firstMatch(headers, keywords []string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return h
			}
		}
	}
	return ""
}

// ParseCSV reads a delimited file with a header row into rows keyed by
// header name. Short rows are padded so a missing trailing cell reads as
// blank rather than failing the whole file.
func ParseCSV(r io.Reader) (headers []string, rows []map[string]string, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err = reader.Read()
	if err == io.EOF || (err == nil && len(headers) == 0) {
		return nil, nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// BuildRecords applies the confirmed mapping to parsed rows, returning
// the players to insert and the count of rows dropped for blank required
// cells. Fails without touching storage when the mapping is incomplete or
// nothing valid remains.
func BuildRecords(rows []map[string]string, mapping ColumnMapping) ([]models.Player, int, error) {
	if mapping.FirstName == "" || mapping.LastName == "" {
		return nil, 0, ErrMappingIncomplete
	}

	var records []models.Player
	dropped := 0
	for _, row := range rows {
		fn := strings.TrimSpace(row[mapping.FirstName])
		ln := strings.TrimSpace(row[mapping.LastName])
		if fn == "" || ln == "" {
			dropped++
			continue
		}
		p := models.Player{
			FirstName: fn,
			LastName:  ln,
			Status:    models.StatusActive,
		}
		if mapping.Nickname != "" {
			if nick := strings.TrimSpace(row[mapping.Nickname]); nick != "" {
				p.Nickname = &nick
			}
		}
		records = append(records, p)
	}

	if len(records) == 0 {
		return nil, dropped, ErrNoValidRows
	}
	return records, dropped, nil
}

// RosterImportService persists validated import batches.
type RosterImportService struct {
	db *gorm.DB
}

func NewRosterImportService(db *gorm.DB) *RosterImportService {
	return &RosterImportService{db: db}
}

// Import bulk-inserts the records unconditionally; deduplication is the
// job of the (first_name, last_name, nickname) unique constraint, whose
// violation comes back as ErrDuplicatePlayers.
func (s *RosterImportService) Import(records []models.Player) error {
	if len(records) == 0 {
		return ErrNoValidRows
	}
	if err := s.db.Create(&records).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicatePlayers
		}
		return err
	}
	return nil
}
