// Package reload 설정 파일이 바뀌면 패널 데이터를 다시 적재하는 서비스를 제공합니다.
package reload

import (
	"context"
	"sync"

	"github.com/darkkaiser/health-panel/internal/config"
	"github.com/darkkaiser/health-panel/internal/panel"
	"github.com/darkkaiser/health-panel/internal/service/api/constants"
	applog "github.com/darkkaiser/health-panel/pkg/log"
)

const component = "reload.service"

const (
	logMsgServiceStarted        = "설정 감시 서비스 시작됨"
	logMsgServiceAlreadyStarted = "설정 감시 서비스가 이미 시작됨!!!"
	logMsgServiceStopped        = "설정 감시 서비스 중지됨"
	logMsgStopFailed            = "설정 파일 감시를 정상적으로 중지하지 못했습니다"
	logMsgWatchFailed           = "설정 파일 감시를 시작할 수 없어 변경 사항이 자동으로 반영되지 않습니다"
	logMsgReloaded              = "설정 파일 변경이 패널에 반영되었습니다"
	logMsgReloadFailed          = "변경된 설정 파일이 유효하지 않아 기존 패널 데이터를 유지합니다"
	logMsgWatchLost             = "설정 파일 감시가 끊겼습니다. 파일이 다시 생기면 감시를 재개합니다"
)

// Observer 재적재 결과를 기록합니다.
type Observer interface {
	ObserveConfigReload(err error)
	SetPanelServices(count int)
}

// Service 설정 파일을 감시하다가 유효한 변경이 감지되면 Store의 패널 데이터를 교체합니다.
//
// 유효하지 않은 설정은 기록만 하고 무시하므로 화면에는 항상 마지막으로 검증된 데이터가 표시됩니다.
type Service struct {
	store    *panel.Store
	observer Observer

	watcher *config.Watcher

	running   bool
	runningMu sync.Mutex
}

// NewService filename을 감시하는 Service를 생성합니다.
func NewService(filename string, store *panel.Store, observer Observer) *Service {
	if store == nil {
		panic(constants.PanicMsgPanelStoreRequired)
	}
	if observer == nil {
		panic(constants.PanicMsgObserverRequired)
	}

	s := &Service{
		store:    store,
		observer: observer,
	}
	s.watcher = config.NewWatcher(filename, s.apply, s.reject)

	return s
}

// Start 설정 파일 감시를 시작합니다.
//
// 감시를 시작하지 못해도 서버 구동에는 지장이 없으므로 에러를 반환하지 않고 경고만 남깁니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn(logMsgServiceAlreadyStarted)
		return nil
	}

	s.observer.SetPanelServices(len(s.store.Snapshot().Services))

	if err := s.watcher.Start(); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn(logMsgWatchFailed)
	}

	s.running = true

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		if err := s.watcher.Stop(); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Warn(logMsgStopFailed)
		}

		s.runningMu.Lock()
		s.running = false
		s.runningMu.Unlock()

		applog.WithComponent(component).Info(logMsgServiceStopped)
	}()

	applog.WithComponent(component).Info(logMsgServiceStarted)

	return nil
}

// apply 검증을 통과한 설정의 패널 데이터를 Store에 반영합니다.
func (s *Service) apply(cfg *config.AppConfig) {
	data := cfg.Panel.ToData()
	s.store.Replace(data)

	s.observer.ObserveConfigReload(nil)
	s.observer.SetPanelServices(len(data.Services))

	applog.WithComponentAndFields(component, applog.Fields{
		"services":         len(data.Services),
		"aggregate_health": data.AggregateHealth,
	}).Info(logMsgReloaded)
}

// reject 적용하지 못한 변경을 기록합니다. 감시가 끊긴 경우는 설정 오류가 아니므로 지표에 포함하지 않습니다.
func (s *Service) reject(err error) {
	if config.IsWatchLost(err) {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn(logMsgWatchLost)
		return
	}

	s.observer.ObserveConfigReload(err)

	applog.WithComponentAndFields(component, applog.Fields{
		"error": err,
	}).Warn(logMsgReloadFailed)
}
