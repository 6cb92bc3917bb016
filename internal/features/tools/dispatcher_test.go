package tools

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/tools/domain"
	velocitydomain "velocity-proxy/internal/features/velocity/domain"
	"velocity-proxy/internal/features/velocity/usecase"
)

// capturingRequests records the requests the facade hands to the pipeline.
type capturingRequests struct {
	last velocitydomain.Request
}

func (c *capturingRequests) Execute(_ context.Context, req velocitydomain.Request) (interface{}, error) {
	c.last = req
	return velocitydomain.SuccessResponse(), nil
}

func newTestDispatcher() (*Dispatcher, *capturingRequests) {
	captured := &capturingRequests{}
	registry := NewRegistry(usecase.NewAPI(captured))
	return NewDispatcher(registry), captured
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(usecase.NewAPI(&capturingRequests{}))
	assert.NotNil(t, registry)

	assert.Panics(t, func() { NewRegistry(nil) }, "Should panic when API facade is nil")
}

func TestNewDispatcher(t *testing.T) {
	registry := NewRegistry(usecase.NewAPI(&capturingRequests{}))
	assert.NotNil(t, NewDispatcher(registry))

	assert.Panics(t, func() { NewDispatcher(nil) }, "Should panic when registry is nil")
}

func TestListIsSortedAndComplete(t *testing.T) {
	dispatcher, _ := newTestDispatcher()
	definitions := dispatcher.List()

	assert.True(t, sort.SliceIsSorted(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	}), "Definitions should be sorted by name")

	names := make(map[string]bool, len(definitions))
	for _, def := range definitions {
		names[def.Name] = true
	}

	for _, expected := range []string{
		"get_feeds", "get_feed", "create_feed", "start_feed", "stop_feed",
		"get_realtime_analytics", "start_realtime_analytic",
		"get_bigdata_analytics", "scale_bigdata_analytic",
		"get_feature_services", "get_stream_services",
		"get_feed_types", "get_version", "query_logs",
		"export_configuration", "get_tenant_metrics",
	} {
		assert.True(t, names[expected], "Catalogue should contain %s", expected)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	dispatcher, _ := newTestDispatcher()

	_, err := dispatcher.Dispatch(context.Background(), "no_such_tool", nil)
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err), "Unknown tool should be a not-found error")
	assert.Contains(t, err.Error(), "no_such_tool")
}

func TestDispatchMissingRequiredArg(t *testing.T) {
	dispatcher, captured := newTestDispatcher()

	_, err := dispatcher.Dispatch(context.Background(), "get_feed", map[string]interface{}{})
	require.Error(t, err)
	assert.True(t, common.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "feed_id")
	assert.Empty(t, captured.last.Method, "The handler must not run with missing arguments")
}

func TestDispatchWrongArgType(t *testing.T) {
	dispatcher, _ := newTestDispatcher()

	_, err := dispatcher.Dispatch(context.Background(), "get_feed", map[string]interface{}{
		"feed_id": 42.0,
	})
	require.Error(t, err)
	assert.True(t, common.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "must be a string")
}

func TestDispatchSuccess(t *testing.T) {
	dispatcher, captured := newTestDispatcher()

	result, err := dispatcher.Dispatch(context.Background(), "get_feed", map[string]interface{}{
		"feed_id": "feed-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, http.MethodGet, captured.last.Method)
	assert.Equal(t, "/iot/feed/feed-1", captured.last.Path)
}

func TestDispatchWithNilArgs(t *testing.T) {
	dispatcher, captured := newTestDispatcher()

	result, err := dispatcher.Dispatch(context.Background(), "get_feeds", nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "/iot/feed", captured.last.Path)
}

func TestDispatchOptionalArgs(t *testing.T) {
	dispatcher, captured := newTestDispatcher()
	ctx := context.Background()

	// Optional locale omitted
	_, err := dispatcher.Dispatch(ctx, "get_feed_types", map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, captured.last.Params)

	// Optional locale supplied
	_, err = dispatcher.Dispatch(ctx, "get_feed_types", map[string]interface{}{"locale": "en_US"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"locale": "en_US"}, captured.last.Params)
}

func TestDispatchNumericArgs(t *testing.T) {
	dispatcher, captured := newTestDispatcher()

	// JSON numbers arrive as float64
	_, err := dispatcher.Dispatch(context.Background(), "scale_bigdata_analytic", map[string]interface{}{
		"analytic_id": "a1",
		"cpu":         2.0,
		"memory":      8.0,
		"instances":   3.0,
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, captured.last.Method)
	assert.Equal(t, "/iot/analytics/bigdata/a1/scale", captured.last.Path)
	assert.Equal(t, map[string]interface{}{"cpu": 2.0, "memory": 8.0, "instances": 3}, captured.last.Body)
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	// Build a registry with a deliberately panicking handler
	panicking := NewRegistry(usecase.NewAPI(&capturingRequests{}))
	panicking.register(domain.Definition{Name: "explode"}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		panic("boom")
	})

	dispatcher := NewDispatcher(panicking)
	_, err := dispatcher.Dispatch(context.Background(), "explode", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
	assert.Contains(t, err.Error(), "boom")
}
