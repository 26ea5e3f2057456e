package panel

import "sync/atomic"

// Store 현재 표시 중인 패널 데이터를 보관합니다.
//
// 설정 파일이 다시 로드되면 Replace로 전체 데이터를 한 번에 교체하며,
// 읽는 쪽은 잠금 없이 항상 완전한 하나의 스냅샷을 얻습니다.
type Store struct {
	current atomic.Pointer[Data]
}

// NewStore 초기 데이터로 Store를 생성합니다.
func NewStore(d Data) *Store {
	s := &Store{}
	s.Replace(d)
	return s
}

// Snapshot 현재 데이터의 복사본을 반환합니다. 반환된 값을 수정해도 Store에는 영향이 없습니다.
func (s *Store) Snapshot() Data {
	return s.current.Load().Clone()
}

// Replace 데이터를 교체합니다. 전달된 값은 복사되어 저장됩니다.
func (s *Store) Replace(d Data) {
	c := d.Clone()
	s.current.Store(&c)
}
