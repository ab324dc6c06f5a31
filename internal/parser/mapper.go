package parser

import (
	"strings"

	"rostercheck/internal/model"
)

// MapSheet 시트 그리드를 표준 레코드 목록으로 변환
// rows[0] 은 헤더. 셀 단위 정규화 실패는 여기서 올리지 않고 Field 에 기록만 한다.
// 매핑 대상 컬럼이 전부 공백인 행은 레코드로 만들지 않는다.
func MapSheet(spec *model.RosterSpec, sheetName string, rows [][]string) []model.CanonicalRecord {
	if len(rows) <= 1 {
		return nil
	}

	colIdx := mapColumns(spec, rows[0])
	records := make([]model.CanonicalRecord, 0, len(rows)-1)

	for i, row := range rows[1:] {
		rowNum := i + 2

		blank := true
		for _, col := range spec.Columns {
			if idx, ok := colIdx[col.Name]; ok && idx < len(row) && strings.TrimSpace(row[idx]) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		rec := model.CanonicalRecord{
			SheetName: sheetName,
			RowNumber: rowNum,
			Kind:      spec.Kind,
			Fields:    make(map[string]model.Field, len(spec.Columns)),
		}

		for _, col := range spec.Columns {
			raw := ""
			if idx, ok := colIdx[col.Name]; ok && idx < len(row) {
				raw = strings.TrimSpace(row[idx])
			}
			rec.Fields[col.Name] = normalizeCell(col, raw)
		}
		rec.EmpID = rec.Fields["emp_id"].Text

		records = append(records, rec)
	}

	return records
}

// normalizeCell 컬럼 타입에 따라 셀 하나를 정규화
func normalizeCell(col model.ColumnSpec, raw string) model.Field {
	f := model.Field{Raw: raw, Present: raw != ""}
	if !f.Present {
		// 공백은 실패가 아니다. 필수 여부는 검증 단계에서 본다.
		f.Valid = true
		return f
	}

	switch col.Type {
	case model.FieldText:
		f.Text = ToEmpID(raw)
		f.Valid = true
	case model.FieldDate:
		f.Date, f.Valid = ToISODate(raw)
	case model.FieldNumber:
		f.Number, f.Valid = ToNumber(raw)
	case model.FieldCode:
		var ok bool
		f.Code, _, ok = ToCode(raw, col.Allowed)
		f.Valid = ok
	}
	return f
}

// mapColumns 헤더에서 표준 컬럼별 열 인덱스를 찾는다
// 정규화 후 완전 일치를 먼저 보고, 없으면 별칭을 포함하는 헤더를 허용한다.
func mapColumns(spec *model.RosterSpec, header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = NormalizeName(h)
	}

	idx := make(map[string]int, len(spec.Columns))
	used := make(map[int]bool, len(header))

	for _, col := range spec.Columns {
		found := -1
		for _, alias := range col.Aliases {
			na := NormalizeName(alias)
			for i, h := range normalized {
				if !used[i] && h == na {
					found = i
					break
				}
			}
			if found >= 0 {
				break
			}
		}
		if found < 0 {
			// 완전 일치 실패 시 포함 일치 (예: "기준급여(원)")
			// 두 글자짜리 별칭은 오인식이 잦아 포함 일치에서 제외
			for _, alias := range col.Aliases {
				na := NormalizeName(alias)
				if len([]rune(na)) < 3 {
					continue
				}
				for i, h := range normalized {
					if !used[i] && h != "" && strings.Contains(h, na) {
						found = i
						break
					}
				}
				if found >= 0 {
					break
				}
			}
		}
		if found >= 0 {
			idx[col.Name] = found
			used[found] = true
		}
	}

	return idx
}
