// Command worldview serves a generated world over HTTP: a JSON endpoint for
// the full world data, and a WebSocket that streams generation progress
// events while a world is built on demand.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lawnchairsociety/wildlands/internal/config"
	"github.com/lawnchairsociety/wildlands/internal/logger"
	"github.com/lawnchairsociety/wildlands/internal/worlddata"
	"github.com/lawnchairsociety/wildlands/internal/worldgen"
)

type viewer struct {
	cfg *config.Config

	mu    sync.Mutex
	world *worlddata.WorldData
}

// progressEvent is one message on the generation stream.
type progressEvent struct {
	Stage string `json:"stage"`
	Done  bool   `json:"done"`
	Error string `json:"error,omitempty"`
}

func main() {
	configFile := flag.String("config", "data/wildlands.yaml", "Path to config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load config, using defaults", "path", *configFile, "error", err)
	}
	if *addr != "" {
		cfg.Viewer.ListenAddr = *addr
	}

	v := &viewer{cfg: cfg}

	http.HandleFunc("/world", v.handleWorld)
	http.HandleFunc("/ws/generate", v.handleGenerate)

	logger.Info("World viewer listening", "address", cfg.Viewer.ListenAddr)
	if err := http.ListenAndServe(cfg.Viewer.ListenAddr, nil); err != nil {
		log.Fatalf("Viewer server error: %v", err)
	}
}

// handleWorld serves the latest generated world as JSON.
func (v *viewer) handleWorld(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	world := v.world
	v.mu.Unlock()

	if world == nil {
		http.Error(w, "No world generated yet. Connect to /ws/generate first.", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(world); err != nil {
		logger.Error("Failed to encode world", "error", err)
	}
}

// handleGenerate upgrades to WebSocket, generates a world with the query's
// seed and dimensions (falling back to config), and streams one event per
// generation stage followed by a final done event.
func (v *viewer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := v.cfg.Viewer.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("WebSocket connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	if v.cfg.Viewer.MaxMessageSize > 0 {
		conn.SetReadLimit(v.cfg.Viewer.MaxMessageSize)
	}

	seed := queryInt64(r, "seed", v.cfg.World.Seed)
	width := queryInt(r, "width", v.cfg.World.Width)
	height := queryInt(r, "height", v.cfg.World.Height)

	logger.Info("Generation stream started", "seed", seed, "width", width, "height", height)

	gen := worldgen.New(seed, width, height, nil)
	gen.Progress = func(stage string) {
		if err := conn.WriteJSON(progressEvent{Stage: stage}); err != nil {
			logger.Warning("Failed to write progress event", "error", err)
		}
	}

	world, err := gen.Generate()
	if err != nil {
		conn.WriteJSON(progressEvent{Done: true, Error: err.Error()})
		return
	}

	v.mu.Lock()
	v.world = world
	v.mu.Unlock()

	conn.WriteJSON(progressEvent{Stage: "done", Done: true})
	logger.Info("Generation stream finished", "seed", world.Header.Seed)
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	if s := r.URL.Query().Get(key); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	if s := r.URL.Query().Get(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}
