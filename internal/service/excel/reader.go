package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Workbook 읽기 전용 시트 그리드 모음
// 업로드 바이트 스트림을 시트명 -> 셀 행렬로 펼쳐둔다.
type Workbook struct {
	order []string
	grids map[string][][]string
}

// Load 엑셀 파일 로드
func Load(reader io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	wb := &Workbook{
		order: make([]string, 0, len(names)),
		grids: make(map[string][][]string, len(names)),
	}
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		wb.order = append(wb.order, name)
		wb.grids[name] = rows
	}
	return wb, nil
}

// FromGrids 테스트/파이프라인용 직접 구성
func FromGrids(order []string, grids map[string][][]string) *Workbook {
	return &Workbook{order: order, grids: grids}
}

// SheetNames 워크북 순서대로의 시트명
func (w *Workbook) SheetNames() []string {
	return w.order
}

// Rows 시트의 셀 행렬 (헤더 포함)
func (w *Workbook) Rows(name string) [][]string {
	return w.grids[name]
}
