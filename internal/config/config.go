package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 응용 설정
// 프로세스 기동 시 1회 로드하고 이후 변경하지 않는다.
type AppConfig struct {
	Server     ServerConfig     `toml:"server"`
	Data       DataConfig       `toml:"data"`
	Validation ValidationConfig `toml:"validation"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 설정 (검증 실행 이력 DB 위치)
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ValidationConfig 검증 상수
// 2차(맥락) 검증의 개연성 구간과 1차 검증의 경계값. K-IFRS 1019 실무 기준.
type ValidationConfig struct {
	MinimumWage         float64 `toml:"minimum_wage"`          // 월 최저임금 (기준급여 경고 기준)
	SeveranceBandLow    float64 `toml:"severance_band_low"`    // 추계액 개연성 하한 배수
	SeveranceBandHigh   float64 `toml:"severance_band_high"`   // 추계액 개연성 상한 배수
	MinWorkingAge       float64 `toml:"min_working_age"`       // 연령-근속 일관성 최소 근로 연령
	HireAgeMin          float64 `toml:"hire_age_min"`          // 입사 연령 하한
	HireAgeMax          float64 `toml:"hire_age_max"`          // 입사 연령 상한
	MinRetirementAmount float64 `toml:"min_retirement_amount"` // 퇴직/전환 금액 최소 개연 수준
	SummaryMaxMessages  int     `toml:"summary_max_messages"`  // 시트별 요약 메시지 최대 건수
	BaseDate            string  `toml:"base_date"`             // 검증 기준일 (YYYY-MM-DD, 비우면 오늘)
}

// LoadConfigInfo 설정 로드 메타 정보
type LoadConfigInfo struct {
	PortSpecified bool
	FileFound     bool
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20817,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Validation: ValidationConfig{
			MinimumWage:         1700000,
			SeveranceBandLow:    0.7,
			SeveranceBandHigh:   1.3,
			MinWorkingAge:       15,
			HireAgeMin:          17,
			HireAgeMax:          70,
			MinRetirementAmount: 100000,
			SummaryMaxMessages:  3,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	serverAny, ok := raw["server"]
	if !ok {
		return false
	}
	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}
	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 실행 파일 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo config.toml 로드 + 메타 정보 반환
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 설정 파일이 없으면 기본값 사용
			return config, info, nil
		}
		return nil, info, err
	}

	info.FileFound = true
	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// 환경 변수 우선 (E2E / 재현 테스트용 고정 기준일)
	if v := os.Getenv("ROSTERCHECK_BASE_DATE"); v != "" {
		config.Validation.BaseDate = v
	}

	return config, info, nil
}

// SaveConfig 설정 저장
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 데이터 디렉터리 보장
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "uploads"), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
