package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/cardctl/internal/card"
	"github.com/danmuck/cardctl/internal/observability"
	"github.com/danmuck/cardctl/internal/store"
	"github.com/danmuck/cardctl/internal/wire"
)

const maxBodyBytes = 4 << 20

type warningJSON struct {
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

type propertyJSON struct {
	Group  string              `json:"group,omitempty"`
	Name   string              `json:"name"`
	Kind   string              `json:"kind"`
	Params map[string][]string `json:"params,omitempty"`
	Value  string              `json:"value"`
}

type cardJSON struct {
	Version    string         `json:"version"`
	Properties []propertyJSON `json:"properties"`
	Warnings   []warningJSON  `json:"warnings,omitempty"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": s.cfg.Name,
			"version": "0.1.0",
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":  true,
			"uptime": time.Since(s.appeared).String(),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/v1/cards/parse", s.handleParse)
	s.router.POST("/v1/cards/normalize", s.handleNormalize)

	s.router.GET("/v1/book", s.handleBookList)
	s.router.GET("/v1/book/:id", s.handleBookGet)
	s.router.PUT("/v1/book/:id", s.handleBookPut)
	s.router.DELETE("/v1/book/:id", s.handleBookDelete)
}

// handleParse is tolerant by contract: malformed input yields warnings in
// a 200 response, never an error status.
func (s *Server) handleParse(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	start := time.Now()
	cards, loose := card.ParseAll(body)
	warnings := countWarnings(cards, loose)
	observability.RecordParse(s.cfg.Name, len(cards), warnings, time.Since(start))
	observability.SetCodecOutcome(c, len(cards), warnings)

	c.JSON(http.StatusOK, gin.H{
		"cards":    cardsToJSON(cards),
		"warnings": warningsToJSON(loose),
	})
}

// handleNormalize re-encodes parsed input. Strict mode surfaces the
// write-side validation verdict as a 422 naming the offending property.
func (s *Server) handleNormalize(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	strict := s.cfg.StrictWrite
	if q, present := c.GetQuery("strict"); present {
		strict = q == "true" || q == "1"
	}

	cards, loose := card.ParseAll(body)
	observability.SetCodecOutcome(c, len(cards), countWarnings(cards, loose))
	if len(cards) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": card.ErrNoCard.Error()})
		return
	}

	var out string
	for _, one := range cards {
		if strict {
			text, err := card.Encode(one)
			if err != nil {
				observability.RecordEncode(s.cfg.Name, false)
				respondValidation(c, err)
				return
			}
			out += text
			continue
		}
		out += card.EncodeUnchecked(one)
	}
	observability.RecordEncode(s.cfg.Name, true)
	c.Data(http.StatusOK, "text/vcard; charset=utf-8", []byte(out))
}

func (s *Server) handleBookList(c *gin.Context) {
	ids, err := s.book.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": ids})
}

func (s *Server) handleBookGet(c *gin.Context) {
	body, err := s.book.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vcard; charset=utf-8", []byte(body))
}

// handleBookPut normalizes before storing so the book only ever holds
// canonical, validated output.
func (s *Server) handleBookPut(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}
	one, _, err := card.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text, err := card.Encode(one)
	if err != nil {
		observability.RecordEncode(s.cfg.Name, false)
		respondValidation(c, err)
		return
	}
	observability.RecordEncode(s.cfg.Name, true)
	if err := s.book.Put(c.Param("id"), text); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": c.Param("id")})
}

func (s *Server) handleBookDelete(c *gin.Context) {
	if err := s.book.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (s *Server) readBody(c *gin.Context) (string, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return "", false
	}
	return string(body), true
}

func respondValidation(c *gin.Context, err error) {
	var ve card.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    ve.Error(),
			"property": ve.Property,
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func cardsToJSON(cards []card.Card) []cardJSON {
	out := make([]cardJSON, 0, len(cards))
	for _, one := range cards {
		cj := cardJSON{
			Version:  one.Version,
			Warnings: warningsToJSON(one.Warnings),
		}
		for _, p := range one.Properties {
			pj := propertyJSON{Group: p.Group, Name: p.Name, Kind: p.Kind().String(), Value: p.Value}
			if p.Params.Len() > 0 {
				pj.Params = make(map[string][]string, p.Params.Len())
				for _, e := range p.Params.Entries() {
					pj.Params[e.Name] = e.Value.Values()
				}
			}
			cj.Properties = append(cj.Properties, pj)
		}
		out = append(out, cj)
	}
	return out
}

func warningsToJSON(warnings []wire.Warning) []warningJSON {
	out := make([]warningJSON, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningJSON{Line: w.Line, Message: w.Message})
	}
	return out
}

func countWarnings(cards []card.Card, loose []wire.Warning) int {
	n := len(loose)
	for _, c := range cards {
		n += len(c.Warnings)
	}
	return n
}
