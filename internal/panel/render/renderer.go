// Package render 패널 뷰 모델을 HTML로 렌더링합니다.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/darkkaiser/health-panel/internal/panel"
	apperrors "github.com/darkkaiser/health-panel/internal/pkg/errors"
	"github.com/labstack/echo/v4"
)

const (
	// TemplatePanel 다른 페이지에 삽입할 수 있는 패널 조각 템플릿 이름입니다.
	TemplatePanel = "panel"

	// TemplatePage 패널 하나를 담은 완전한 HTML 문서 템플릿 이름입니다.
	TemplatePage = "page"

	// estimatedOutputSize 렌더링 결과의 예상 크기(Byte)입니다.
	estimatedOutputSize = 8 * 1024
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer 임베드된 템플릿으로 패널을 렌더링합니다. 인스턴스마다 템플릿을 따로 파싱하며 상태를 공유하지 않습니다.
//
// echo.Renderer를 구현하므로 echo.Echo의 Renderer로 등록할 수 있습니다.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New 템플릿을 파싱하여 Renderer를 생성합니다.
func New() (*Renderer, error) {
	t, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "패널 템플릿 파싱에 실패했습니다")
	}

	for _, name := range []string{TemplatePanel, TemplatePage} {
		if t.Lookup(name) == nil {
			return nil, apperrors.Newf(apperrors.Internal, "패널 템플릿('%s')이 정의되지 않았습니다", name)
		}
	}

	return &Renderer{templates: t}, nil
}

// RenderPanel 패널 조각을 w에 씁니다.
func (r *Renderer) RenderPanel(w io.Writer, v panel.View) error {
	return r.execute(w, TemplatePanel, v)
}

// RenderPage 패널을 포함한 HTML 문서를 w에 씁니다.
func (r *Renderer) RenderPage(w io.Writer, v panel.View) error {
	return r.execute(w, TemplatePage, v)
}

// Render echo.Renderer 구현입니다. data는 panel.View 또는 *panel.View여야 합니다.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	switch v := data.(type) {
	case panel.View:
		return r.execute(w, name, v)
	case *panel.View:
		if v == nil {
			return apperrors.New(apperrors.InvalidInput, "렌더링할 패널 뷰가 nil입니다")
		}
		return r.execute(w, name, *v)
	default:
		return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 렌더링 데이터 타입입니다: %T", data)
	}
}

// execute 템플릿 실행 결과를 버퍼에 모은 뒤 한 번에 씁니다. 실행 중 실패하면 w에는 아무것도 쓰지 않습니다.
func (r *Renderer) execute(w io.Writer, name string, v panel.View) error {
	if r.templates.Lookup(name) == nil {
		return apperrors.Newf(apperrors.NotFound, "패널 템플릿('%s')을 찾을 수 없습니다", name)
	}

	var buf bytes.Buffer
	buf.Grow(estimatedOutputSize)

	if err := r.templates.ExecuteTemplate(&buf, name, v); err != nil {
		return apperrors.Wrapf(err, apperrors.Internal, "패널 템플릿('%s') 렌더링에 실패했습니다", name)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return apperrors.Wrap(err, apperrors.System, "렌더링 결과 전송에 실패했습니다")
	}

	return nil
}
