package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"gorm.io/gorm"

	"linkshelf/internal/config"
	"linkshelf/internal/db"
	applog "linkshelf/internal/log"
	"linkshelf/models"
)

var (
	urlPattern      = regexp.MustCompile(`https?://[^\s<>"'()\[\]]+`)
	trailingPunct   = ".,;:!?"
	errNoLinksFound = errors.New("no links found")
)

type linkRecord struct {
	Title    string
	URL      string
	Position *int
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import_links <links.csv|media-kit.pdf>")
		os.Exit(2)
	}

	if err := run(context.Background(), os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("import path must not be empty")
	}

	records, err := readRecords(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	imported, err := importLinks(ctx, database, cfg.Site.Handle, records)
	if err != nil {
		return err
	}

	applog.Info(ctx, "import complete", "file", filepath.Base(path), "records", len(records), "imported", imported)
	return nil
}

func readRecords(path string) ([]linkRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return readCSV(file)
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text, err := extractTextFromPDF(data)
		if err != nil {
			return nil, fmt.Errorf("extract pdf text: %w", err)
		}
		records := recordsFromText(text)
		if len(records) == 0 {
			return nil, errNoLinksFound
		}
		return records, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

// readCSV expects a header row naming at least "title" and "url"; "position" is optional.
func readCSV(r io.Reader) ([]linkRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for idx, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	titleCol, hasTitle := columns["title"]
	urlCol, hasURL := columns["url"]
	if !hasTitle || !hasURL {
		return nil, errors.New(`csv header must include "title" and "url"`)
	}
	positionCol, hasPosition := columns["position"]

	cell := func(row []string, idx int) string {
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]linkRecord, 0, len(rows)-1)
	for line, row := range rows[1:] {
		title := cell(row, titleCol)
		rawURL := cell(row, urlCol)
		if title == "" && rawURL == "" {
			continue
		}
		if !models.ValidLinkURL(rawURL) {
			return nil, fmt.Errorf("line %d: invalid url %q", line+2, rawURL)
		}
		if title == "" {
			title = hostTitle(rawURL)
		}

		record := linkRecord{Title: title, URL: rawURL}
		if hasPosition {
			if raw := cell(row, positionCol); raw != "" {
				position, err := strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid position %q: %w", line+2, raw, err)
				}
				record.Position = &position
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// recordsFromText finds http(s) URLs in free text, in order of appearance,
// skipping repeats. Each link is titled with its host.
func recordsFromText(text string) []linkRecord {
	seen := make(map[string]struct{})
	var records []linkRecord
	for _, match := range urlPattern.FindAllString(text, -1) {
		candidate := strings.TrimRight(match, trailingPunct)
		if !models.ValidLinkURL(candidate) {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		records = append(records, linkRecord{Title: hostTitle(candidate), URL: candidate})
	}
	return records
}

func hostTitle(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// importLinks appends records to the profile, skipping URLs it already has.
func importLinks(ctx context.Context, database *gorm.DB, handle string, records []linkRecord) (int, error) {
	profile, err := db.LoadProfile(ctx, database, handle)
	if err != nil {
		return 0, fmt.Errorf("load profile %q: %w", handle, err)
	}

	existing := make(map[string]struct{}, len(profile.Links))
	for _, link := range profile.Links {
		existing[link.URL] = struct{}{}
	}

	imported := 0
	next := profile.NextPosition()
	err = database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if _, dup := existing[record.URL]; dup {
				applog.Debug(ctx, "skipping existing link", "url", record.URL)
				continue
			}
			position := next
			if record.Position != nil {
				position = *record.Position
			}
			link := models.Link{ProfileID: profile.ID, Title: record.Title, URL: record.URL, Position: position}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("create link %q: %w", record.URL, err)
			}
			existing[record.URL] = struct{}{}
			if position >= next {
				next = position + 1
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}
