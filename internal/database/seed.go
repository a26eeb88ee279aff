package database

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"restaurant_pos_backend/pkg/utils"
)

// SeedMenuFromCSVIfEmpty populates the menu table from a CSV file, but only
// when the table currently has no rows. Subsequent runs never re-seed or
// merge. A missing file is not an error; malformed rows are skipped
// individually so one bad line cannot abort the whole load.
//
// Expected header: name,category,price,gst_percent[,available_today]
func SeedMenuFromCSVIfEmpty(db *sql.DB, csvPath string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		return fmt.Errorf("could not count menu rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	file, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			utils.LogWarn("Menu seed CSV not found, no menu items seeded", map[string]interface{}{"path": csvPath})
			return nil
		}
		return fmt.Errorf("could not open menu seed CSV %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // the available_today column is optional

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("could not read menu seed CSV header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(strings.ToLower(col))] = i
	}
	for _, required := range []string{"name", "price"} {
		if _, ok := colIndex[required]; !ok {
			return fmt.Errorf("menu seed CSV is missing required column %q", required)
		}
	}

	stmt, err := db.Prepare(`INSERT INTO menu (name, category, price, gst_percent, available_today) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("could not prepare menu seed insert: %w", err)
	}
	defer stmt.Close()

	seeded := 0
	skipped := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			utils.LogWarn("Skipping unreadable menu seed row", map[string]interface{}{"line": line, "error": err.Error()})
			skipped++
			continue
		}

		name, category, price, gst, available, ok := parseSeedRecord(record, colIndex)
		if !ok {
			utils.LogWarn("Skipping malformed menu seed row", map[string]interface{}{"line": line})
			skipped++
			continue
		}

		if _, err := stmt.Exec(name, category, price, gst, available); err != nil {
			utils.LogWarn("Skipping menu seed row that failed to insert", map[string]interface{}{"line": line, "error": err.Error()})
			skipped++
			continue
		}
		seeded++
	}

	utils.LogInfo("Menu seeded from CSV", map[string]interface{}{"path": csvPath, "seeded": seeded, "skipped": skipped})
	return nil
}

func parseSeedRecord(record []string, colIndex map[string]int) (name string, category *string, price, gst float64, available int, ok bool) {
	field := func(col string) (string, bool) {
		i, exists := colIndex[col]
		if !exists || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	name, _ = field("name")
	if name == "" {
		return "", nil, 0, 0, 0, false
	}

	if cat, _ := field("category"); cat != "" {
		category = &cat
	}

	priceStr, _ := field("price")
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		return "", nil, 0, 0, 0, false
	}

	if gstStr, present := field("gst_percent"); present && gstStr != "" {
		gst, err = strconv.ParseFloat(gstStr, 64)
		if err != nil || gst < 0 {
			return "", nil, 0, 0, 0, false
		}
	}

	// Seeded items are orderable unless the CSV says otherwise.
	available = 1
	if avStr, present := field("available_today"); present && avStr != "" {
		av, err := strconv.Atoi(avStr)
		if err != nil {
			return "", nil, 0, 0, 0, false
		}
		if av == 0 {
			available = 0
		}
	}

	return name, category, price, gst, available, true
}
