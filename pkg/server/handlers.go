package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Jessica765/vial-userspace/pkg/cache"
	"github.com/Jessica765/vial-userspace/pkg/errors"
	"github.com/Jessica765/vial-userspace/pkg/keymap"
	"github.com/Jessica765/vial-userspace/pkg/render/ascii"
)

// keyboardInfo is one catalogue entry in the /keyboards listing.
type keyboardInfo struct {
	Name     string   `json:"name"`
	Geometry string   `json:"geometry"`
	SplitAt  int      `json:"split_at,omitempty"`
	Layers   []string `json:"layers"`
	Encoders int      `json:"encoders,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeText(w, []byte("ok\n"))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	boards := keymap.Catalog()
	infos := make([]keyboardInfo, 0, len(boards))
	for _, kb := range boards {
		info := keyboardInfo{
			Name:     kb.Name,
			Geometry: string(kb.Config.Geometry),
			Layers:   kb.LayerNames(),
		}
		if kb.Config.Geometry == keymap.GeometrySplit {
			info.SplitAt = kb.Config.EffectiveSplitAt()
		}
		for _, nl := range kb.Layers {
			if n := len(nl.Layer.Encoders); n > info.Encoders {
				info.Encoders = n
			}
		}
		infos = append(infos, info)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		s.logger.Error("encoding keyboard listing", "err", err)
	}
}

func (s *Server) handleKeyboard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	kb, ok := keymap.Lookup(name)
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeKeyboardNotFound, "unknown keyboard %q", name))
		return
	}
	splitAt, err := splitAtParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.serveRender(w, r, kb.Name, cache.RenderKeyOpts{SplitAt: splitAt}, func() (string, error) {
		return ascii.RenderKeyboard(kb, splitAt), nil
	})
}

func (s *Server) handleLayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	layer := chi.URLParam(r, "layer")
	kb, ok := keymap.Lookup(name)
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeKeyboardNotFound, "unknown keyboard %q", name))
		return
	}
	splitAt, err := splitAtParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.serveRender(w, r, kb.Name, cache.RenderKeyOpts{Layer: layer, SplitAt: splitAt}, func() (string, error) {
		return ascii.RenderLayer(kb, layer, splitAt)
	})
}

// serveRender writes a rendered diagram, consulting the render cache first.
func (s *Server) serveRender(w http.ResponseWriter, r *http.Request, board string, opts cache.RenderKeyOpts, render func() (string, error)) {
	ctx := r.Context()
	key := s.keyer.RenderKey(board, opts)

	if data, hit, _ := s.cache.Get(ctx, key); hit {
		writeText(w, data)
		return
	}

	text, err := render()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_ = s.cache.Set(ctx, key, []byte(text), s.ttl)
	writeText(w, []byte(text))
}

func writeText(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(data)
}

// splitAtParam parses the optional split_at query parameter.
func splitAtParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("split_at")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "split_at must be a positive integer, got %q", raw)
	}
	return v, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeKeyboardNotFound, errors.ErrCodeLayerNotFound, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
