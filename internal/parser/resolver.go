package parser

import (
	"fmt"

	"rostercheck/internal/model"
)

// MissingRosterError 필수 명부 시트를 찾지 못한 구조적 실패
// 검증 지적(Finding)이 아니라 요청 전체를 거부한다.
type MissingRosterError struct {
	Kind         model.RosterKind
	StandardName string
}

func (e *MissingRosterError) Error() string {
	return fmt.Sprintf("필수 시트 '%s'를 찾을 수 없습니다", e.StandardName)
}

// Resolution 시트 해석 결과
type Resolution struct {
	// Sheets 명부 종류 -> 실제 시트명 (선택 명부는 없으면 키 자체가 없음)
	Sheets map[model.RosterKind]string
	// Duplicates 같은 종류에 두 번째 이후로 매칭된 시트에 대한 경고
	Duplicates []model.Finding
}

// ResolveWorkbook 업로드된 시트명 목록을 4종 표준 명부에 매핑
// 키워드 전부 포함 + 제외어 미포함이면 매칭. 동률은 워크북 순서상 첫 시트가 이긴다.
// 필수 명부가 하나도 매칭되지 않으면 *MissingRosterError 를 반환한다.
func ResolveWorkbook(sheetNames []string) (*Resolution, error) {
	res := &Resolution{Sheets: make(map[model.RosterKind]string)}
	claimed := make(map[string]bool)

	for i := range model.Rosters {
		spec := &model.Rosters[i]
		for _, name := range sheetNames {
			if claimed[name] {
				continue
			}
			norm := NormalizeName(name)
			if !ContainsAll(norm, spec.Keywords) || ContainsAny(norm, spec.Excludes) {
				continue
			}
			if first, ok := res.Sheets[spec.Kind]; ok {
				// 첫 매칭 우선, 이후 매칭은 경고로 남긴다
				res.Duplicates = append(res.Duplicates, model.Finding{
					Sheet:    name,
					Row:      0,
					Column:   "",
					Type:     model.TypeDuplicateSheetMatch,
					Message:  fmt.Sprintf("시트 '%s'가 '%s'와 같은 명부('%s')로 중복 인식되었습니다. 첫 시트만 사용합니다", name, first, spec.StandardName),
					Severity: model.SeverityWarning,
				})
				continue
			}
			res.Sheets[spec.Kind] = name
			claimed[name] = true
		}

		if _, ok := res.Sheets[spec.Kind]; !ok && !spec.Optional {
			return nil, &MissingRosterError{Kind: spec.Kind, StandardName: spec.StandardName}
		}
	}

	return res, nil
}
