package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/seed"
	"github.com/preston-bernstein/football-players-service/internal/testutil"
)

const seedJSON = `[
	{"id": 1, "firstName": "Damián", "middleName": "Emiliano", "lastName": "Martínez",
	 "dateOfBirth": "1992-09-02T00:00:00.000Z", "squadNumber": 23, "position": "Goalkeeper",
	 "abbrPosition": "GK", "team": "Aston Villa FC", "league": "Premier League", "starting11": true},
	{"id": 2, "firstName": "Lionel", "middleName": "Andrés", "lastName": "Messi",
	 "dateOfBirth": "1987-06-24T00:00:00.000Z", "squadNumber": 10, "position": "Right Winger",
	 "abbrPosition": "RW", "team": "Paris Saint-Germain", "league": "Ligue 1", "starting11": true}
]`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:     "0",
		SeedFile: writeSeed(t, seedJSON),
		CORS:     config.CORSConfig{Enabled: true, Origins: []string{"*"}},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func TestNewServesSeededPlayers(t *testing.T) {
	srv, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header from middleware")
	}
	var all []players.PlayerResponse
	testutil.DecodeJSON(t, rr, &all)
	if len(all) != 2 || all[1].LastName != "Messi" {
		t.Fatalf("unexpected seeded players %+v", all)
	}

	rr = testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "Sample REST API with Go") {
		t.Fatalf("expected banner, got %s", rr.Body.String())
	}

	rr = testutil.ServeJSON(router, http.MethodPost, "/players", testutil.SampleRequestJSON(10))
	testutil.AssertStatus(t, rr, http.StatusConflict)

	rr = testutil.ServeJSON(router, http.MethodPost, "/players", testutil.SampleRequestJSON(7))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var created players.PlayerResponse
	testutil.DecodeJSON(t, rr, &created)
	if created.ID != 3 {
		t.Fatalf("expected id 3, got %d", created.ID)
	}
	if srv.store.Len() != 3 {
		t.Fatalf("expected store size 3, got %d", srv.store.Len())
	}
}

func TestNewFailsWithoutSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.json")

	if _, err := New(cfg, nil); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestNewFailsOnDuplicateSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = writeSeed(t, `[{"id": 1, "squadNumber": 9}, {"id": 2, "squadNumber": 9}]`)

	if _, err := New(cfg, nil); !errors.Is(err, seed.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestNewUsesSeedLoaderOverride(t *testing.T) {
	orig := loadSeed
	defer func() { loadSeed = orig }()
	loadSeed = func(string) ([]players.Player, error) {
		return []players.Player{testutil.SamplePlayer(5, 5)}, nil
	}

	srv, err := New(config.Config{Port: "0"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.store.Len() != 1 {
		t.Fatalf("expected overridden seed to be used")
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return errors.New("exporter gone")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected metrics server Shutdown once, got %d", metricsSrv.ShutdownCalls)
	}
	if stopCalls != 1 {
		t.Fatalf("expected metrics stop once, got %d", stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
	if !strings.Contains(buf.String(), "graceful shutdown failed") {
		t.Fatalf("expected shutdown failure to be logged")
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
