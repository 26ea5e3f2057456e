package config

import (
	"os"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/health-panel/internal/pkg/errors"
	"github.com/knadh/koanf/providers/file"
)

// defaultRewatchInterval 감시가 끊긴 뒤 설정 파일이 다시 생겼는지 확인하는 주기입니다.
const defaultRewatchInterval = 500 * time.Millisecond

// Watcher 설정 파일의 변경을 감지하여 다시 로드합니다.
//
// 변경이 감지될 때마다 LoadWithFile과 동일한 절차(기본값, 파일, 환경 변수, 검증)로 설정을 다시 읽으며,
// 검증에 성공한 설정만 onReload로 전달합니다. 실패한 경우 onError가 호출되고 기존 설정은 유지됩니다.
//
// 파일이 삭제되는 등의 이유로 감시가 끊기면 IsWatchLost를 만족하는 에러가 onError로 전달되고,
// 파일이 다시 생길 때까지 주기적으로 감시를 재시도합니다. 재개에 성공하면 설정을 한 번 다시 읽습니다.
type Watcher struct {
	filename string
	provider *file.File

	onReload func(*AppConfig)
	onError  func(error)

	rewatchInterval time.Duration

	mu        sync.Mutex
	running   bool
	stopC     chan struct{}
	rewatchWG sync.WaitGroup
}

// NewWatcher 새로운 Watcher를 생성합니다. onError는 nil일 수 있습니다.
func NewWatcher(filename string, onReload func(*AppConfig), onError func(error)) *Watcher {
	if onReload == nil {
		panic("Watcher: onReload 콜백은 nil일 수 없습니다")
	}

	return &Watcher{
		filename:        filename,
		onReload:        onReload,
		onError:         onError,
		rewatchInterval: defaultRewatchInterval,
	}
}

// IsWatchLost err가 설정 파일 감시가 끊겼음을 나타내는지 확인합니다.
func IsWatchLost(err error) bool {
	return apperrors.Is(err, apperrors.Unavailable)
}

// Start 파일 감시를 시작합니다.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	p, err := w.watch()
	if err != nil {
		return apperrors.Wrapf(err, apperrors.System, "설정 파일('%s') 감시를 시작할 수 없습니다", w.filename)
	}

	w.provider = p
	w.stopC = make(chan struct{})
	w.running = true

	return nil
}

// Stop 파일 감시를 중지합니다. 여러 번 호출해도 안전합니다.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopC)

	p := w.provider
	w.provider = nil
	w.mu.Unlock()

	// 재시도 중인 고루틴이 새 감시를 걸지 않도록 종료를 기다린다.
	w.rewatchWG.Wait()

	if p == nil {
		return nil
	}
	if err := p.Unwatch(); err != nil {
		return apperrors.Wrapf(err, apperrors.System, "설정 파일('%s') 감시 중지에 실패했습니다", w.filename)
	}

	return nil
}

// watch 새 provider로 감시를 겁니다.
//
// koanf의 file provider는 감시가 한 번 끝나면 재사용할 수 없으므로 매번 새로 만든다.
// 파일이 없을 때 Watch를 호출하면 provider 내부 잠금이 풀리지 않으므로 존재 여부를 먼저 확인한다.
func (w *Watcher) watch() (*file.File, error) {
	if _, err := os.Stat(w.filename); err != nil {
		return nil, err
	}

	p := file.Provider(w.filename)
	if err := p.Watch(w.onEvent); err != nil {
		return nil, err
	}

	return p, nil
}

// onEvent provider가 호출하는 콜백입니다. err가 있으면 provider의 감시는 이미 종료된 상태입니다.
func (w *Watcher) onEvent(_ any, err error) {
	if err != nil {
		w.lost(err)
		return
	}

	w.reload()
}

func (w *Watcher) reload() {
	cfg, err := LoadWithFile(w.filename)
	if err != nil {
		w.fail(err)
		return
	}

	w.onReload(cfg)
}

// lost 끊긴 감시를 알리고 재시도 고루틴을 시작합니다.
func (w *Watcher) lost(cause error) {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.provider = nil
	stopC := w.stopC
	w.rewatchWG.Add(1)
	w.mu.Unlock()

	w.fail(apperrors.Wrapf(cause, apperrors.Unavailable, "설정 파일('%s') 감시가 중단되었습니다", w.filename))

	go w.rewatch(stopC)
}

func (w *Watcher) rewatch(stopC <-chan struct{}) {
	defer w.rewatchWG.Done()

	ticker := time.NewTicker(w.rewatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopC:
			return

		case <-ticker.C:
			p, err := w.watch()
			if err != nil {
				continue
			}

			w.mu.Lock()
			if !w.running {
				w.mu.Unlock()
				_ = p.Unwatch()
				return
			}
			w.provider = p
			w.mu.Unlock()

			// 감시가 끊긴 동안 바뀐 내용을 반영한다.
			w.reload()
			return
		}
	}
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
