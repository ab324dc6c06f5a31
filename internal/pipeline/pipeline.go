package pipeline

import (
	"time"

	"rostercheck/internal/config"
	"rostercheck/internal/model"
	"rostercheck/internal/parser"
	"rostercheck/internal/report"
	"rostercheck/internal/service/excel"
	"rostercheck/internal/validator"
)

// Pipeline 업로드 1건의 해석 -> 매핑 -> 검증 -> 집계 파이프라인
// 요청 간 공유 상태가 없어 요청마다 병렬로 불러도 안전하다.
type Pipeline struct {
	cfg  config.ValidationConfig
	base time.Time
}

// New 파이프라인 생성
// cfg.BaseDate 가 지정되면 그 날짜를, 아니면 now 를 검증 기준일로 쓴다.
func New(cfg config.ValidationConfig, now time.Time) *Pipeline {
	base := now
	if cfg.BaseDate != "" {
		if t, err := time.Parse("2006-01-02", cfg.BaseDate); err == nil {
			base = t
		}
	}
	return &Pipeline{cfg: cfg, base: base}
}

// BaseDate 검증 기준일
func (p *Pipeline) BaseDate() time.Time {
	return p.base
}

// Run 전체 파이프라인 실행
// 필수 명부 미해석은 *parser.MissingRosterError 로 반환되고 리포트는 만들지 않는다.
// 셀 단위 문제는 전부 Finding 으로 리포트에 담긴다.
func (p *Pipeline) Run(wb *excel.Workbook) (*model.ValidationReport, error) {
	res, err := parser.ResolveWorkbook(wb.SheetNames())
	if err != nil {
		return nil, err
	}

	records := make(map[model.RosterKind][]model.CanonicalRecord, len(res.Sheets))
	total := 0
	for i := range model.Rosters {
		spec := &model.Rosters[i]
		sheetName, ok := res.Sheets[spec.Kind]
		if !ok {
			continue // 선택 명부 부재는 0건 기여
		}
		recs := parser.MapSheet(spec, sheetName, wb.Rows(sheetName))
		records[spec.Kind] = recs
		total += len(recs)
	}

	engine := validator.NewEngine(p.cfg, p.base)
	findings := engine.Validate(records)

	// 시트 해석 단계의 중복 매칭 경고도 리포트에 포함
	findings = append(findings, res.Duplicates...)

	return report.Build(findings, total, p.cfg.SummaryMaxMessages), nil
}

// SheetCount 업로드 미리보기용 시트별 레코드 수
type SheetCount struct {
	Kind         model.RosterKind `json:"kind"`
	StandardName string           `json:"standard_name"`
	SheetName    string           `json:"sheet_name"`
	Records      int              `json:"records"`
}

// Preview 검증 없이 시트 해석과 레코드 수만 계산
func (p *Pipeline) Preview(wb *excel.Workbook) ([]SheetCount, error) {
	res, err := parser.ResolveWorkbook(wb.SheetNames())
	if err != nil {
		return nil, err
	}

	counts := make([]SheetCount, 0, len(res.Sheets))
	for i := range model.Rosters {
		spec := &model.Rosters[i]
		sheetName, ok := res.Sheets[spec.Kind]
		if !ok {
			continue
		}
		recs := parser.MapSheet(spec, sheetName, wb.Rows(sheetName))
		counts = append(counts, SheetCount{
			Kind:         spec.Kind,
			StandardName: spec.StandardName,
			SheetName:    sheetName,
			Records:      len(recs),
		})
	}
	return counts, nil
}
