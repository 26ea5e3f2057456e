package log

import "github.com/sirupsen/logrus"

// silentFormatter 표준 출력 경로의 포맷팅을 생략하기 위한 포맷터입니다.
// 실제 포맷팅은 hook이 한 번만 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
