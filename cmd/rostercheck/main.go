package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rostercheck/internal/config"
	"rostercheck/internal/server"
	"rostercheck/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 우선, port 미지정 시에만 적용)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일보다 우선)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  RosterCheck - 퇴직급여 명부 검증 도구")
	fmt.Println("==========================================")

	// 설정 로드
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정 사용: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	} else if !info.FileFound {
		// 첫 실행이면 기본 설정 파일을 만들어 둔다 (수정 기준점)
		if saveErr := config.SaveConfig(cfg); saveErr != nil {
			log.Printf("기본 설정 파일 생성 실패: %v", saveErr)
		} else {
			fmt.Println("기본 설정 파일(config.toml)을 생성했습니다")
		}
	}

	// 명령행 인자가 설정을 덮어쓴다
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 데이터 디렉터리 보장
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("데이터 디렉터리 생성 실패: %v", err)
	} else {
		fmt.Printf("데이터 디렉터리: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("서비스 시작 중, 포트 %d 수신 대기...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("브라우저 열기: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("브라우저를 자동으로 열 수 없습니다. 직접 접속해 주세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s 로 접속하세요\n", url)
	}

	fmt.Println("\nCtrl+C 로 서비스를 중지합니다...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서비스를 종료합니다...")
	if err := srv.Close(); err != nil {
		log.Printf("종료 중 자원 정리 실패: %v", err)
	}
}
