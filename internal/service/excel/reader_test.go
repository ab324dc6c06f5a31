package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook 메모리에서 엑셀 파일 생성
func buildWorkbook(t *testing.T, sheets map[string][][]string, order []string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName: %v", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("NewSheet(%s): %v", name, err)
			}
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			cells := make([]interface{}, len(row))
			for c, v := range row {
				cells[c] = v
			}
			if err := f.SetSheetRow(name, cell, &cells); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return &buf
}

func TestLoad(t *testing.T) {
	order := []string{"재직자 명부", "퇴직자 및 DC전환자 명부"}
	sheets := map[string][][]string{
		"재직자 명부": {
			{"사원번호", "생년월일"},
			{"0001", "19800510"},
		},
		"퇴직자 및 DC전환자 명부": {
			{"사원번호"},
		},
	}

	wb, err := Load(buildWorkbook(t, sheets, order))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "재직자 명부" || names[1] != "퇴직자 및 DC전환자 명부" {
		t.Fatalf("sheet names = %v", names)
	}

	rows := wb.Rows("재직자 명부")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "사원번호" || rows[1][1] != "19800510" {
		t.Fatalf("cells = %v", rows)
	}
}

func TestLoad_NotAnExcelFile(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte("not an excel file"))); err == nil {
		t.Fatal("expected error for non-excel input")
	}
}

func TestFromGrids(t *testing.T) {
	wb := FromGrids([]string{"a", "b"}, map[string][][]string{
		"a": {{"1"}},
		"b": {{"2"}},
	})
	if got := wb.SheetNames(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("sheet names = %v", got)
	}
	if wb.Rows("a")[0][0] != "1" {
		t.Fatalf("rows = %v", wb.Rows("a"))
	}
	if wb.Rows("없는시트") != nil {
		t.Fatal("unknown sheet should return nil rows")
	}
}
