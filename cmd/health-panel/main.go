package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/health-panel/internal/config"
	"github.com/darkkaiser/health-panel/internal/panel"
	"github.com/darkkaiser/health-panel/internal/panel/render"
	"github.com/darkkaiser/health-panel/internal/pkg/version"
	"github.com/darkkaiser/health-panel/internal/service"
	"github.com/darkkaiser/health-panel/internal/service/api"
	"github.com/darkkaiser/health-panel/internal/service/api/metrics"
	"github.com/darkkaiser/health-panel/internal/service/reload"
	applog "github.com/darkkaiser/health-panel/pkg/log"
)

// @title Health Panel API
// @version 1.0
// @description 서비스 상태 패널을 HTML과 JSON으로 제공하는 API 서버입니다.
// @description
// @description ## 주요 기능
// @description - 상태 패널 HTML 페이지 및 삽입용 조각 제공
// @description - 같은 패널 데이터의 JSON 제공
// @description - 설정 파일(health-panel.json) 변경 시 패널 자동 갱신
// @description
// @description 패널에 표시되는 값은 설정 파일의 panel 항목에서 읽으며, 서버가 직접 서비스 상태를 조회하지는 않습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

const component = "main"

const banner = `
 _   _            _ _   _       ____                  _
| | | | ___  __ _| | |_| |__   |  _ \ __ _ _ __   ___| |
| |_| |/ _ \/ _' | | __| '_ \  | |_) / _' | '_ \ / _ \ |
|  _  |  __/ (_| | | |_| | | | |  __/ (_| | | | |  __/ |
|_| |_|\___|\__,_|_|\__|_| |_| |_|   \__,_|_| |_|\___|_|
                                                         %s
                                                  developed by DarkKaiser
--------------------------------------------------------------------------------
`

// parseFlags 실행 인자에서 설정 파일 경로를 읽습니다.
func parseFlags(args []string, output io.Writer) (string, error) {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(output)

	configFile := fs.String("config", config.DefaultFilename, "설정 파일 경로")

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	return *configFile, nil
}

func main() {
	configFile, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version":     buildInfo.String(),
		"config_file": configFile,
		"env":         map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	// 3. 패널 구성 요소 생성
	renderer, err := render.New()
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Fatal("패널 템플릿을 준비할 수 없어 프로그램을 종료합니다")
	}

	store := panel.NewStore(appConfig.Panel.ToData())
	m := metrics.New()

	// 4. 서비스를 생성하고 시작한다.
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{
		reload.NewService(configFile, store, m),
		api.NewService(appConfig, store, renderer, m, buildInfo),
	}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			applog.WithComponent(component).Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponentAndFields(component, applog.Fields{
		"port": appConfig.HTTPServer.ListenPort,
	}).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()
}
