package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"sealstack/internal/assemble"
	"sealstack/internal/coordinate"
	"sealstack/internal/engine"
	"sealstack/internal/pattern"
)

// patternResponse is the wire form of a stored pattern.
type patternResponse struct {
	Coordinate string   `json:"coordinate"`
	Layer      int      `json:"layer"`
	LayerName  string   `json:"layer_name"`
	Title      string   `json:"title"`
	Language   string   `json:"language,omitempty"`
	Tags       []string `json:"tags"`
	Body       string   `json:"body"`
}

func toPatternResponse(p *pattern.Pattern) patternResponse {
	return patternResponse{
		Coordinate: p.Coordinate.String(),
		Layer:      int(p.Coordinate.Layer),
		LayerName:  p.Coordinate.Layer.Name(),
		Title:      p.Title,
		Language:   p.Language,
		Tags:       p.Tags,
		Body:       p.Body,
	}
}

// moduleResponse is the wire form of an assembled module.
type moduleResponse struct {
	Entity       string           `json:"entity,omitempty"`
	Coherence    int              `json:"coherence"`
	Completeness float64          `json:"completeness"`
	Layers       []layerSelection `json:"layers"`
	Output       string           `json:"output"`
}

type layerSelection struct {
	Layer      int    `json:"layer"`
	Name       string `json:"name"`
	Coordinate string `json:"coordinate,omitempty"`
}

func toModuleResponse(m *assemble.Module) moduleResponse {
	resp := moduleResponse{
		Entity:       m.Entity,
		Coherence:    m.Coherence,
		Completeness: m.Completeness,
		Output:       m.Output,
	}
	for _, sel := range m.Selections {
		ls := layerSelection{Layer: int(sel.Layer), Name: sel.Layer.Name()}
		if sel.Present() {
			ls.Coordinate = sel.Pattern.Coordinate.String()
		}
		resp.Layers = append(resp.Layers, ls)
	}
	return resp
}

func observeModule(m *assemble.Module) {
	present := 0
	for _, sel := range m.Selections {
		if sel.Present() {
			present++
		}
	}
	moduleCoherence.Observe(float64(m.Coherence))
	moduleLayers.Observe(float64(present))
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "sealstack",
		"layers":  coordinate.NumLayers,
		"endpoints": []string{
			"/health",
			"/metrics",
			"/v1/patterns/:coordinate",
			"/v1/search",
			"/v1/module",
			"/v1/batch",
			"/v1/layers",
			"/v1/stats",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"patterns":       s.eng.Store().Len(),
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleRetrieve(c *gin.Context) {
	p, err := s.eng.Retrieve(c.Param("coordinate"))
	switch {
	case errors.Is(err, coordinate.ErrMalformed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pattern.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, toPatternResponse(p))
	}
}

func (s *Server) handleSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	opts := engine.SearchOptions{Lexicon: c.Query("lexicon")}
	if v := c.Query("layer"); v != "" {
		layer, err := strconv.Atoi(v)
		if err != nil || !coordinate.SealLayer(layer).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "layer must be 1 through 7"})
			return
		}
		opts.Layer = coordinate.SealLayer(layer)
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		opts.Limit = limit
	}

	results := s.eng.Search(q, opts)
	resp := make([]patternResponse, 0, len(results))
	for _, p := range results {
		resp = append(resp, toPatternResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "count": len(resp), "results": resp})
}

// moduleRequest asks for module assembly either from free text or from an
// exact coordinate plus entity name.
type moduleRequest struct {
	Query      string `json:"query"`
	Coordinate string `json:"coordinate"`
	Entity     string `json:"entity"`
}

func (s *Server) handleModule(c *gin.Context) {
	var req moduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		mod *assemble.Module
		err error
	)
	switch {
	case req.Coordinate != "":
		var coord coordinate.Coordinate
		coord, err = coordinate.Parse(req.Coordinate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mod, err = s.eng.BuildModuleAt(coord, req.Entity)
	case req.Query != "":
		mod, err = s.eng.BuildModule(req.Query)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either query or coordinate is required"})
		return
	}

	switch {
	case errors.Is(err, assemble.ErrEmptyModule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no applicable patterns"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		observeModule(mod)
		c.JSON(http.StatusOK, toModuleResponse(mod))
	}
}

// batchRequest retrieves several coordinates in one round trip. Failures are
// reported per item, never for the batch as a whole.
type batchRequest struct {
	Coordinates []string `json:"coordinates"`
}

type batchItem struct {
	Coordinate string           `json:"coordinate"`
	Pattern    *patternResponse `json:"pattern,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (s *Server) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Coordinates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must not be empty"})
		return
	}

	items := make([]batchItem, 0, len(req.Coordinates))
	found := 0
	for _, coordText := range req.Coordinates {
		item := batchItem{Coordinate: coordText}
		p, err := s.eng.Retrieve(coordText)
		if err != nil {
			item.Error = err.Error()
		} else {
			resp := toPatternResponse(p)
			item.Pattern = &resp
			found++
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "found": found, "results": items})
}

func (s *Server) handleLayers(c *gin.Context) {
	byLayer := s.eng.Store().CountByLayer()
	layers := make([]gin.H, 0, coordinate.NumLayers)
	for _, layer := range coordinate.Layers() {
		layers = append(layers, gin.H{
			"layer":       int(layer),
			"name":        layer.Name(),
			"description": layer.Description(),
			"patterns":    byLayer[layer],
		})
	}
	c.JSON(http.StatusOK, gin.H{"layers": layers})
}

func (s *Server) handleStats(c *gin.Context) {
	store := s.eng.Store()

	byLayer := map[string]int{}
	for layer, n := range store.CountByLayer() {
		byLayer[layer.Name()] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"patterns":       store.Len(),
		"by_layer":       byLayer,
		"by_lexicon":     store.CountByLexicon(),
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
	})
}
