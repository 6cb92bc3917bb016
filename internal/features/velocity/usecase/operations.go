package usecase

import (
	"context"
	"fmt"
	"net/http"

	"velocity-proxy/internal/features/velocity/domain"
)

// API exposes the Velocity REST operations as named methods. Each is a
// fixed method + path template delegated verbatim to the request pipeline.
type API struct {
	requests domain.RequestProvider
}

// NewAPI creates a new operation facade
func NewAPI(requests domain.RequestProvider) *API {
	if requests == nil {
		panic("request provider cannot be nil")
	}
	return &API{requests: requests}
}

func (a *API) get(ctx context.Context, path string, params map[string]string) (interface{}, error) {
	return a.requests.Execute(ctx, domain.Request{Method: http.MethodGet, Path: path, Params: params})
}

func (a *API) post(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return a.requests.Execute(ctx, domain.Request{Method: http.MethodPost, Path: path, Body: body})
}

func (a *API) put(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return a.requests.Execute(ctx, domain.Request{Method: http.MethodPut, Path: path, Body: body})
}

func (a *API) delete(ctx context.Context, path string) (interface{}, error) {
	return a.requests.Execute(ctx, domain.Request{Method: http.MethodDelete, Path: path})
}

// localeParams builds the optional locale query parameter
func localeParams(locale string) map[string]string {
	if locale == "" {
		return nil
	}
	return map[string]string{"locale": locale}
}

// metricsBody builds the optional time interval body for metrics calls
func metricsBody(timeInterval string) map[string]interface{} {
	body := map[string]interface{}{}
	if timeInterval != "" {
		body["timeInterval"] = timeInterval
	}
	return body
}

// historyBody builds the body for history metric calls
func historyBody(startTime, endTime int64, timeInterval string) map[string]interface{} {
	body := map[string]interface{}{
		"startTime": startTime,
		"endTime":   endTime,
	}
	if timeInterval != "" {
		body["timeInterval"] = timeInterval
	}
	return body
}

// cloneBody builds the body for clone calls
func cloneBody(name, description string) map[string]interface{} {
	body := map[string]interface{}{"name": name}
	if description != "" {
		body["description"] = description
	}
	return body
}

// scaleBody builds the body for scale calls
func scaleBody(cpu, memory float64, instances int) map[string]interface{} {
	return map[string]interface{}{
		"cpu":       cpu,
		"memory":    memory,
		"instances": instances,
	}
}

// ---------- Feed management ----------

func (a *API) GetFeeds(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/feed", nil)
}

func (a *API) GetFeed(ctx context.Context, feedID string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/"+feedID, nil)
}

func (a *API) CreateFeed(ctx context.Context, feedData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/feed", feedData)
}

func (a *API) UpdateFeed(ctx context.Context, feedID string, feedData interface{}) (interface{}, error) {
	return a.put(ctx, "/iot/feed/"+feedID, feedData)
}

func (a *API) DeleteFeed(ctx context.Context, feedID string) (interface{}, error) {
	return a.delete(ctx, "/iot/feed/"+feedID)
}

func (a *API) StartFeed(ctx context.Context, feedID string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/"+feedID+"/start", nil)
}

func (a *API) StopFeed(ctx context.Context, feedID string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/"+feedID+"/stop", nil)
}

func (a *API) GetFeedStatus(ctx context.Context, feedID string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/"+feedID+"/status", nil)
}

func (a *API) GetAllFeedStatus(ctx context.Context, itemIDs string) (interface{}, error) {
	var params map[string]string
	if itemIDs != "" {
		params = map[string]string{"itemIds": itemIDs}
	}
	return a.get(ctx, "/iot/feed/status", params)
}

func (a *API) GetFeedMetrics(ctx context.Context, feedID, timeInterval string) (interface{}, error) {
	return a.post(ctx, "/iot/feed/metrics/"+feedID, metricsBody(timeInterval))
}

func (a *API) GetFeedHistory(ctx context.Context, feedID string, startTime, endTime int64, timeInterval string) (interface{}, error) {
	return a.post(ctx, "/iot/feed/metrics/"+feedID+"/history", historyBody(startTime, endTime, timeInterval))
}

func (a *API) CloneFeed(ctx context.Context, feedID, name, description string) (interface{}, error) {
	return a.post(ctx, "/iot/feed/"+feedID+"/clone", cloneBody(name, description))
}

func (a *API) ValidateFeed(ctx context.Context, feedData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/feed/validate", feedData)
}

func (a *API) ValidateFeedByID(ctx context.Context, feedID string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/validate/"+feedID, nil)
}

func (a *API) ScaleFeed(ctx context.Context, feedID string, cpu, memory float64, instances int) (interface{}, error) {
	return a.put(ctx, "/iot/feed/"+feedID+"/scale", scaleBody(cpu, memory, instances))
}

// ---------- Real-time analytics ----------

func (a *API) GetRealtimeAnalytics(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime", nil)
}

func (a *API) GetRealtimeAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime/"+analyticID, nil)
}

func (a *API) CreateRealtimeAnalytic(ctx context.Context, analyticData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/realtime", analyticData)
}

func (a *API) UpdateRealtimeAnalytic(ctx context.Context, analyticID string, analyticData interface{}) (interface{}, error) {
	return a.put(ctx, "/iot/analytics/realtime/"+analyticID, analyticData)
}

func (a *API) DeleteRealtimeAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.delete(ctx, "/iot/analytics/realtime/"+analyticID)
}

func (a *API) StartRealtimeAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime/"+analyticID+"/start", nil)
}

func (a *API) StopRealtimeAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime/"+analyticID+"/stop", nil)
}

func (a *API) GetRealtimeAnalyticStatus(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime/"+analyticID+"/status", nil)
}

func (a *API) GetAllRealtimeAnalyticsStatus(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime/status", nil)
}

func (a *API) GetRealtimeAnalyticMetrics(ctx context.Context, analyticID, timeInterval string) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/realtime/metrics/"+analyticID, metricsBody(timeInterval))
}

func (a *API) CloneRealtimeAnalytic(ctx context.Context, analyticID, name, description string) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/realtime/"+analyticID+"/clone", cloneBody(name, description))
}

func (a *API) ScaleRealtimeAnalytic(ctx context.Context, analyticID string, cpu, memory float64, instances int) (interface{}, error) {
	return a.put(ctx, "/iot/analytics/realtime/"+analyticID+"/scale", scaleBody(cpu, memory, instances))
}

func (a *API) ValidateRealtimeAnalytic(ctx context.Context, analyticData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/realtime/validate", analyticData)
}

func (a *API) ValidateRealtimeAnalyticByID(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/realtime/validate/"+analyticID, nil)
}

// ---------- Big data analytics ----------

func (a *API) GetBigDataAnalytics(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/bigdata", nil)
}

func (a *API) GetBigDataAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/bigdata/"+analyticID, nil)
}

func (a *API) CreateBigDataAnalytic(ctx context.Context, analyticData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/bigdata", analyticData)
}

func (a *API) UpdateBigDataAnalytic(ctx context.Context, analyticID string, analyticData interface{}) (interface{}, error) {
	return a.put(ctx, "/iot/analytics/bigdata/"+analyticID, analyticData)
}

func (a *API) DeleteBigDataAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.delete(ctx, "/iot/analytics/bigdata/"+analyticID)
}

func (a *API) StartBigDataAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/bigdata/"+analyticID+"/start", nil)
}

func (a *API) StopBigDataAnalytic(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/bigdata/"+analyticID+"/stop", nil)
}

// GetBigDataAnalyticStatus reports status; watch adds the watch query parameter
func (a *API) GetBigDataAnalyticStatus(ctx context.Context, analyticID string, watch *bool) (interface{}, error) {
	var params map[string]string
	if watch != nil {
		params = map[string]string{"watch": fmt.Sprintf("%t", *watch)}
	}
	return a.get(ctx, "/iot/analytics/bigdata/"+analyticID+"/status", params)
}

func (a *API) GetAllBigDataAnalyticsStatus(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/bigdata/status", nil)
}

func (a *API) CloneBigDataAnalytic(ctx context.Context, analyticID, name, description string) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/bigdata/"+analyticID+"/clone", cloneBody(name, description))
}

func (a *API) ScaleBigDataAnalytic(ctx context.Context, analyticID string, cpu, memory float64, instances int) (interface{}, error) {
	return a.put(ctx, "/iot/analytics/bigdata/"+analyticID+"/scale", scaleBody(cpu, memory, instances))
}

func (a *API) ValidateBigDataAnalytic(ctx context.Context, analyticData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/analytics/bigdata/validate", analyticData)
}

func (a *API) ValidateBigDataAnalyticByID(ctx context.Context, analyticID string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/bigdata/validate/"+analyticID, nil)
}

// ---------- Services ----------

func (a *API) GetAllServices(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/services", nil)
}

func (a *API) GetFeatureServices(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/services/feature", nil)
}

func (a *API) GetFeatureService(ctx context.Context, serviceID string) (interface{}, error) {
	return a.get(ctx, "/iot/services/feature/"+serviceID, nil)
}

func (a *API) CreateFeatureService(ctx context.Context, serviceData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/services/feature", serviceData)
}

func (a *API) UpdateFeatureService(ctx context.Context, serviceID string, serviceData interface{}) (interface{}, error) {
	return a.put(ctx, "/iot/services/feature/"+serviceID, serviceData)
}

func (a *API) DeleteFeatureService(ctx context.Context, serviceID string) (interface{}, error) {
	return a.delete(ctx, "/iot/services/feature/"+serviceID)
}

func (a *API) GetStreamServices(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/services/stream", nil)
}

func (a *API) GetStreamService(ctx context.Context, serviceID string) (interface{}, error) {
	return a.get(ctx, "/iot/services/stream/"+serviceID, nil)
}

func (a *API) UpdateStreamService(ctx context.Context, serviceID string, serviceData interface{}) (interface{}, error) {
	return a.put(ctx, "/iot/services/stream/"+serviceID, serviceData)
}

func (a *API) DeleteStreamService(ctx context.Context, serviceID string) (interface{}, error) {
	return a.delete(ctx, "/iot/services/stream/"+serviceID)
}

func (a *API) GetServiceDependencies(ctx context.Context, portalItemID string) (interface{}, error) {
	return a.get(ctx, "/iot/services/dependencies/"+portalItemID, nil)
}

// ---------- Definitions ----------

func (a *API) GetFeedTypes(ctx context.Context, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/types", localeParams(locale))
}

func (a *API) GetFeedType(ctx context.Context, name, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/feed/type/"+name, localeParams(locale))
}

func (a *API) GetToolDefinitions(ctx context.Context, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/tools", localeParams(locale))
}

func (a *API) GetToolDefinition(ctx context.Context, name, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/analytics/tools/"+name, localeParams(locale))
}

func (a *API) GetOutputDefinitions(ctx context.Context, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/outputs", localeParams(locale))
}

func (a *API) GetOutputDefinition(ctx context.Context, name, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/outputs/"+name, localeParams(locale))
}

func (a *API) GetSourceDefinitions(ctx context.Context, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/sources", localeParams(locale))
}

func (a *API) GetSourceDefinition(ctx context.Context, name, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/sources/"+name, localeParams(locale))
}

func (a *API) GetFormatDefinitions(ctx context.Context, locale string) (interface{}, error) {
	return a.get(ctx, "/iot/formats", localeParams(locale))
}

// ---------- Logs ----------

func (a *API) QueryLogs(ctx context.Context, queryParams interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/logs", queryParams)
}

func (a *API) QueryLogsByItem(ctx context.Context, itemID string, queryParams interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/logs/"+itemID, queryParams)
}

// ---------- Configuration ----------

func (a *API) ExportConfiguration(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/configuration/export", nil)
}

func (a *API) ImportConfiguration(ctx context.Context, configData interface{}) (interface{}, error) {
	return a.post(ctx, "/iot/configuration/import", configData)
}

func (a *API) ResetConfiguration(ctx context.Context) (interface{}, error) {
	return a.delete(ctx, "/iot/configuration/reset")
}

// ---------- Tenant ----------

func (a *API) GetTenantSettings(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/tenant/settings", nil)
}

func (a *API) UpdateTenantSettings(ctx context.Context, settings interface{}) (interface{}, error) {
	return a.put(ctx, "/iot/tenant/settings", settings)
}

func (a *API) GetTenantMetricsSummary(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/tenant/metrics/status", nil)
}

func (a *API) GetTenantMetricsHistory(ctx context.Context, startTime, endTime int64, timeInterval string) (interface{}, error) {
	return a.post(ctx, "/iot/tenant/metrics/history", historyBody(startTime, endTime, timeInterval))
}

// ---------- System ----------

func (a *API) GetVersion(ctx context.Context) (interface{}, error) {
	return a.get(ctx, "/iot/api/version", nil)
}
