package statement

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/extrato-dashboard-go/internal/application/analysis"
	"github.com/diillson/extrato-dashboard-go/internal/shared/types"
)

func TestReadBytesColumnResolution(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		rows    int
		date    string
		inflow  string
		outflow string
	}{
		{
			name:    "portuguese header with semicolon",
			csv:     "Data;Descrição;Entradas;Saidas\n01/01/2025;PIX RECEBIDO Maria Souza;300,00;0\n",
			rows:    1,
			date:    "01/01/2025",
			inflow:  "300,00",
			outflow: "0",
		},
		{
			name:    "english header with comma",
			csv:     "Date,Description,Credit,Debit\n02/01/2025,Uber Trip,0,\"-25,00\"\n",
			rows:    1,
			date:    "02/01/2025",
			inflow:  "0",
			outflow: "-25,00",
		},
		{
			name:    "case-insensitive header match",
			csv:     "DATA;DESCRIÇÃO;ENTRADAS;SAIDAS\n03/01/2025;Teste;1,00;0\n",
			rows:    1,
			date:    "03/01/2025",
			inflow:  "1,00",
			outflow: "0",
		},
		{
			name: "blank rows skipped",
			csv:  "Data;Entradas\n01/01/2025;10,00\n;\n02/01/2025;20,00\n",
			rows: 2,
			date: "01/01/2025",
		},
		{
			name: "cells trimmed",
			csv:  "Data;Entradas\n 01/01/2025 ; 10,00 \n",
			rows: 1,
			date: "01/01/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadBytes([]byte(tt.csv))
			if err != nil {
				t.Fatalf("ReadBytes returned error: %v", err)
			}
			if len(rows) != tt.rows {
				t.Fatalf("rows = %d, want %d", len(rows), tt.rows)
			}
			if rows[0].Date != tt.date {
				t.Errorf("Date = %q, want %q", rows[0].Date, tt.date)
			}
			if tt.inflow != "" && rows[0].Inflow != tt.inflow {
				t.Errorf("Inflow = %q, want %q", rows[0].Inflow, tt.inflow)
			}
			if tt.outflow != "" && rows[0].Outflow != tt.outflow {
				t.Errorf("Outflow = %q, want %q", rows[0].Outflow, tt.outflow)
			}
		})
	}
}

func TestReadBytesMissingDateColumn(t *testing.T) {
	_, err := ReadBytes([]byte("Valor;Descrição\n10,00;Teste\n"))
	if !errors.Is(err, types.ErrNoUsableColumns) {
		t.Errorf("err = %v, want ErrNoUsableColumns", err)
	}
}

func TestReadBytesEmptyInput(t *testing.T) {
	_, err := ReadBytes(nil)
	if !errors.Is(err, types.ErrNoUsableColumns) {
		t.Errorf("err = %v, want ErrNoUsableColumns", err)
	}
}

func TestReadBytesLatinEncoding(t *testing.T) {
	// "Descrição" and "Saídas" in Windows-1252 bytes.
	header := []byte("Data;Descri\xe7\xe3o;Entradas;Sa\xeddas\n01/01/2025;Padaria P\xe3o Quente;0;-8,50\n")

	rows, err := ReadBytes(header)
	if err != nil {
		t.Fatalf("ReadBytes returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Description != "Padaria Pão Quente" {
		t.Errorf("Description = %q, want decoded UTF-8", rows[0].Description)
	}
	if rows[0].Outflow != "-8,50" {
		t.Errorf("Outflow = %q, want -8,50", rows[0].Outflow)
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"semicolons win", "Data;Entradas;Saidas\n1,50;2\n", ';'},
		{"commas win", "Date,Credit,Debit\n", ','},
		{"comma on tie", "Data\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectDelimiter(tt.text); got != tt.want {
				t.Errorf("detectDelimiter(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLoadStatement(t *testing.T) {
	repo := NewStatementRepository()

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.LoadStatement(filepath.Join(t.TempDir(), "nope.csv"), "")
		if !errors.Is(err, types.ErrStatementNotFound) {
			t.Errorf("err = %v, want ErrStatementNotFound", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extrato.txt")
		if err := os.WriteFile(path, []byte("Data;Entradas\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := repo.LoadStatement(path, "")
		if !errors.Is(err, types.ErrUnsupportedFormat) {
			t.Errorf("err = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("csv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extrato.csv")
		content := "Data;Descrição;Entradas;Saidas\n01/01/2025;PIX RECEBIDO Maria Souza;300,00;0\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		rows, err := repo.LoadStatement(path, "")
		if err != nil {
			t.Fatalf("LoadStatement returned error: %v", err)
		}
		if len(rows) != 1 || rows[0].Description != "PIX RECEBIDO Maria Souza" {
			t.Errorf("rows = %+v, want the single PIX row", rows)
		}
	})

	t.Run("sheets of a csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extrato.csv")
		if err := os.WriteFile(path, []byte("Data\n"), 0644); err != nil {
			t.Fatal(err)
		}
		sheets, err := repo.ListSheets(path)
		if err != nil {
			t.Fatalf("ListSheets returned error: %v", err)
		}
		if len(sheets) != 0 {
			t.Errorf("sheets = %v, want empty", sheets)
		}
	})
}

func TestNormalizeNumericCell(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"numeric with decimals", "-25.5", "-25,5"},
		{"numeric integer", "6800", "6800"},
		{"numeric with many decimals", "1234.567", "1234,567"},
		{"formatted text untouched", "1.234,56", "1.234,56"},
		{"comma decimal untouched", "-8,50", "-8,50"},
		{"currency text untouched", "R$ 50,00", "R$ 50,00"},
		{"empty untouched", "", ""},
		{"date untouched", "01/01/2025", "01/01/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeNumericCell(tt.value); got != tt.want {
				t.Errorf("normalizeNumericCell(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadXLSXNumericCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.xlsx")

	f := excelize.NewFile()
	header := []interface{}{"Data", "Descrição", "Entradas", "Saidas"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatal(err)
	}
	// Valores gravados como números, não como texto.
	row1 := []interface{}{"02/01/2025", "Uber Viagem", 0, -25.5}
	if err := f.SetSheetRow("Sheet1", "A2", &row1); err != nil {
		t.Fatal(err)
	}
	row2 := []interface{}{"03/01/2025", "LIQUIDO DE VENCIMENTO Empresa ABC", 6800.75, 0}
	if err := f.SetSheetRow("Sheet1", "A3", &row2); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	repo := NewStatementRepository()
	rows, err := repo.LoadStatement(path, "")
	if err != nil {
		t.Fatalf("LoadStatement returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	if got := analysis.ParseAmount(rows[0].Outflow); got != -25.5 {
		t.Errorf("outflow parsed as %v, want -25.5 (raw cell %q)", got, rows[0].Outflow)
	}
	if got := analysis.ParseAmount(rows[1].Inflow); got != 6800.75 {
		t.Errorf("inflow parsed as %v, want 6800.75 (raw cell %q)", got, rows[1].Inflow)
	}
}

func TestGenerateSample(t *testing.T) {
	spec := SampleSpec{
		Rows:  100,
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Seed:  42,
	}

	first := GenerateSample(spec)
	second := GenerateSample(spec)

	t.Run("deterministic for a seed", func(t *testing.T) {
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("row %d differs between runs", i)
			}
		}
	})

	t.Run("rows sorted by date", func(t *testing.T) {
		layout := "02/01/2006"
		for i := 1; i < len(first); i++ {
			prev, err := time.Parse(layout, first[i-1].Date)
			if err != nil {
				t.Fatalf("unparseable date %q", first[i-1].Date)
			}
			curr, err := time.Parse(layout, first[i].Date)
			if err != nil {
				t.Fatalf("unparseable date %q", first[i].Date)
			}
			if curr.Before(prev) {
				t.Errorf("rows not sorted at index %d", i)
			}
		}
	})

	t.Run("every row has one flow side", func(t *testing.T) {
		for i, row := range first {
			if row.Inflow == "" || row.Outflow == "" {
				t.Errorf("row %d missing flow columns: %+v", i, row)
			}
		}
	})

	t.Run("different seed differs", func(t *testing.T) {
		other := GenerateSample(SampleSpec{Rows: 100, Start: spec.Start, End: spec.End, Seed: 7})
		same := true
		for i := range first {
			if first[i] != other[i] {
				same = false
				break
			}
		}
		if same {
			t.Error("different seeds produced identical statements")
		}
	})
}

func TestWriteSampleCSVRoundTrip(t *testing.T) {
	spec := SampleSpec{
		Rows:  50,
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Seed:  1,
	}
	rows := GenerateSample(spec)

	path := filepath.Join(t.TempDir(), "sample.csv")
	if err := WriteSampleCSV(rows, path); err != nil {
		t.Fatalf("WriteSampleCSV returned error: %v", err)
	}

	repo := NewStatementRepository()
	loaded, err := repo.LoadStatement(path, "")
	if err != nil {
		t.Fatalf("LoadStatement returned error: %v", err)
	}
	if len(loaded) != len(rows) {
		t.Errorf("loaded %d rows, want %d", len(loaded), len(rows))
	}
}
