package tools

import (
	"context"
	"sort"

	"velocity-proxy/internal/features/tools/domain"
	"velocity-proxy/internal/features/velocity/usecase"
)

// Registry holds the catalogue of named operations
type Registry struct {
	tools map[string]domain.Tool
}

// Get returns the tool registered under name
func (r *Registry) Get(name string) (domain.Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// List returns all tool definitions sorted by name
func (r *Registry) List() []domain.Definition {
	definitions := make([]domain.Definition, 0, len(r.tools))
	for _, tool := range r.tools {
		definitions = append(definitions, tool.Definition)
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	})
	return definitions
}

func (r *Registry) register(def domain.Definition, handler domain.Handler) {
	r.tools[def.Name] = domain.Tool{Definition: def, Handler: handler}
}

func requiredString(name, description string) domain.ArgSpec {
	return domain.ArgSpec{Name: name, Type: "string", Description: description, Required: true}
}

func requiredObject(name, description string) domain.ArgSpec {
	return domain.ArgSpec{Name: name, Type: "object", Description: description, Required: true}
}

func optionalStringSpec(name, description string) domain.ArgSpec {
	return domain.ArgSpec{Name: name, Type: "string", Description: description}
}

// NewRegistry builds the full operation catalogue over the API facade
func NewRegistry(api *usecase.API) *Registry {
	if api == nil {
		panic("API facade cannot be nil")
	}

	r := &Registry{tools: make(map[string]domain.Tool)}

	// Feed management
	r.register(domain.Definition{
		Name:        "get_feeds",
		Description: "Get all feeds in the Velocity environment",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetFeeds(ctx)
	})

	r.register(domain.Definition{
		Name:        "get_feed",
		Description: "Get details of a specific feed by ID",
		Args:        []domain.ArgSpec{requiredString("feed_id", "The ID of the feed")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		return api.GetFeed(ctx, feedID)
	})

	r.register(domain.Definition{
		Name:        "create_feed",
		Description: "Create a new feed",
		Args:        []domain.ArgSpec{requiredObject("feed_data", "The feed configuration object")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedData, err := objectArg(args, "feed_data")
		if err != nil {
			return nil, err
		}
		return api.CreateFeed(ctx, feedData)
	})

	r.register(domain.Definition{
		Name:        "update_feed",
		Description: "Update an existing feed",
		Args: []domain.ArgSpec{
			requiredString("feed_id", "The ID of the feed to update"),
			requiredObject("feed_data", "The updated feed configuration"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		feedData, err := objectArg(args, "feed_data")
		if err != nil {
			return nil, err
		}
		return api.UpdateFeed(ctx, feedID, feedData)
	})

	r.register(domain.Definition{
		Name:        "delete_feed",
		Description: "Delete a feed",
		Args:        []domain.ArgSpec{requiredString("feed_id", "The ID of the feed to delete")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		return api.DeleteFeed(ctx, feedID)
	})

	r.register(domain.Definition{
		Name:        "start_feed",
		Description: "Start a feed",
		Args:        []domain.ArgSpec{requiredString("feed_id", "The ID of the feed to start")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		return api.StartFeed(ctx, feedID)
	})

	r.register(domain.Definition{
		Name:        "stop_feed",
		Description: "Stop a running feed",
		Args:        []domain.ArgSpec{requiredString("feed_id", "The ID of the feed to stop")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		return api.StopFeed(ctx, feedID)
	})

	r.register(domain.Definition{
		Name:        "get_feed_status",
		Description: "Get the status of a specific feed",
		Args:        []domain.ArgSpec{requiredString("feed_id", "The ID of the feed")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		return api.GetFeedStatus(ctx, feedID)
	})

	r.register(domain.Definition{
		Name:        "get_feed_metrics",
		Description: "Get metrics for a feed",
		Args: []domain.ArgSpec{
			requiredString("feed_id", "The ID of the feed"),
			optionalStringSpec("time_interval", "Time interval for metrics (e.g., '300s', '5m')"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		return api.GetFeedMetrics(ctx, feedID, optionalString(args, "time_interval"))
	})

	r.register(domain.Definition{
		Name:        "clone_feed",
		Description: "Clone an existing feed",
		Args: []domain.ArgSpec{
			requiredString("feed_id", "The ID of the feed to clone"),
			requiredString("name", "Name for the cloned feed"),
			optionalStringSpec("description", "Description for the cloned feed"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		feedID, err := stringArg(args, "feed_id")
		if err != nil {
			return nil, err
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		return api.CloneFeed(ctx, feedID, name, optionalString(args, "description"))
	})

	// Real-time analytics
	r.register(domain.Definition{
		Name:        "get_realtime_analytics",
		Description: "Get all real-time analytics",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetRealtimeAnalytics(ctx)
	})

	r.register(domain.Definition{
		Name:        "get_realtime_analytic",
		Description: "Get details of a specific real-time analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.GetRealtimeAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "create_realtime_analytic",
		Description: "Create a new real-time analytic",
		Args:        []domain.ArgSpec{requiredObject("analytic_data", "The analytic configuration object")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticData, err := objectArg(args, "analytic_data")
		if err != nil {
			return nil, err
		}
		return api.CreateRealtimeAnalytic(ctx, analyticData)
	})

	r.register(domain.Definition{
		Name:        "update_realtime_analytic",
		Description: "Update an existing real-time analytic",
		Args: []domain.ArgSpec{
			requiredString("analytic_id", "The ID of the analytic to update"),
			requiredObject("analytic_data", "The updated analytic configuration"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		analyticData, err := objectArg(args, "analytic_data")
		if err != nil {
			return nil, err
		}
		return api.UpdateRealtimeAnalytic(ctx, analyticID, analyticData)
	})

	r.register(domain.Definition{
		Name:        "delete_realtime_analytic",
		Description: "Delete a real-time analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to delete")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.DeleteRealtimeAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "start_realtime_analytic",
		Description: "Start a real-time analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to start")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.StartRealtimeAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "stop_realtime_analytic",
		Description: "Stop a real-time analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to stop")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.StopRealtimeAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "get_realtime_analytic_status",
		Description: "Get the status of a real-time analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.GetRealtimeAnalyticStatus(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "get_realtime_analytic_metrics",
		Description: "Get metrics for a real-time analytic",
		Args: []domain.ArgSpec{
			requiredString("analytic_id", "The ID of the analytic"),
			optionalStringSpec("time_interval", "Time interval for metrics"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.GetRealtimeAnalyticMetrics(ctx, analyticID, optionalString(args, "time_interval"))
	})

	// Big data analytics
	r.register(domain.Definition{
		Name:        "get_bigdata_analytics",
		Description: "Get all big data analytics",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetBigDataAnalytics(ctx)
	})

	r.register(domain.Definition{
		Name:        "get_bigdata_analytic",
		Description: "Get details of a specific big data analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.GetBigDataAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "create_bigdata_analytic",
		Description: "Create a new big data analytic",
		Args:        []domain.ArgSpec{requiredObject("analytic_data", "The analytic configuration object")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticData, err := objectArg(args, "analytic_data")
		if err != nil {
			return nil, err
		}
		return api.CreateBigDataAnalytic(ctx, analyticData)
	})

	r.register(domain.Definition{
		Name:        "update_bigdata_analytic",
		Description: "Update an existing big data analytic",
		Args: []domain.ArgSpec{
			requiredString("analytic_id", "The ID of the analytic to update"),
			requiredObject("analytic_data", "The updated analytic configuration"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		analyticData, err := objectArg(args, "analytic_data")
		if err != nil {
			return nil, err
		}
		return api.UpdateBigDataAnalytic(ctx, analyticID, analyticData)
	})

	r.register(domain.Definition{
		Name:        "delete_bigdata_analytic",
		Description: "Delete a big data analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to delete")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.DeleteBigDataAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "start_bigdata_analytic",
		Description: "Start a big data analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to start")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.StartBigDataAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "stop_bigdata_analytic",
		Description: "Stop a big data analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to stop")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.StopBigDataAnalytic(ctx, analyticID)
	})

	r.register(domain.Definition{
		Name:        "get_bigdata_analytic_status",
		Description: "Get the status of a big data analytic",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.GetBigDataAnalyticStatus(ctx, analyticID, nil)
	})

	r.register(domain.Definition{
		Name:        "clone_bigdata_analytic",
		Description: "Clone an existing big data analytic",
		Args: []domain.ArgSpec{
			requiredString("analytic_id", "The ID of the analytic to clone"),
			requiredString("name", "Name for the cloned analytic"),
			optionalStringSpec("description", "Description for the cloned analytic"),
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return nil, err
		}
		return api.CloneBigDataAnalytic(ctx, analyticID, name, optionalString(args, "description"))
	})

	r.register(domain.Definition{
		Name:        "scale_bigdata_analytic",
		Description: "Scale a running big data analytic",
		Args: []domain.ArgSpec{
			requiredString("analytic_id", "The ID of the analytic to scale"),
			{Name: "cpu", Type: "number", Description: "CPU allocation", Required: true},
			{Name: "memory", Type: "number", Description: "Memory allocation in GB", Required: true},
			{Name: "instances", Type: "integer", Description: "Number of instances", Required: true},
		},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		cpu, err := numberArg(args, "cpu")
		if err != nil {
			return nil, err
		}
		memory, err := numberArg(args, "memory")
		if err != nil {
			return nil, err
		}
		instances, err := intArg(args, "instances")
		if err != nil {
			return nil, err
		}
		return api.ScaleBigDataAnalytic(ctx, analyticID, cpu, memory, instances)
	})

	r.register(domain.Definition{
		Name:        "validate_bigdata_analytic",
		Description: "Validate a big data analytic configuration",
		Args:        []domain.ArgSpec{requiredObject("analytic_data", "The analytic configuration to validate")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticData, err := objectArg(args, "analytic_data")
		if err != nil {
			return nil, err
		}
		return api.ValidateBigDataAnalytic(ctx, analyticData)
	})

	r.register(domain.Definition{
		Name:        "validate_bigdata_analytic_by_id",
		Description: "Validate a big data analytic by ID",
		Args:        []domain.ArgSpec{requiredString("analytic_id", "The ID of the analytic to validate")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		analyticID, err := stringArg(args, "analytic_id")
		if err != nil {
			return nil, err
		}
		return api.ValidateBigDataAnalyticByID(ctx, analyticID)
	})

	// Services
	r.register(domain.Definition{
		Name:        "get_feature_services",
		Description: "Get all feature services",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetFeatureServices(ctx)
	})

	r.register(domain.Definition{
		Name:        "get_feature_service",
		Description: "Get details of a specific feature service",
		Args:        []domain.ArgSpec{requiredString("service_id", "The ID of the feature service")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		serviceID, err := stringArg(args, "service_id")
		if err != nil {
			return nil, err
		}
		return api.GetFeatureService(ctx, serviceID)
	})

	r.register(domain.Definition{
		Name:        "get_stream_services",
		Description: "Get all stream services",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetStreamServices(ctx)
	})

	r.register(domain.Definition{
		Name:        "get_stream_service",
		Description: "Get details of a specific stream service",
		Args:        []domain.ArgSpec{requiredString("service_id", "The ID of the stream service")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		serviceID, err := stringArg(args, "service_id")
		if err != nil {
			return nil, err
		}
		return api.GetStreamService(ctx, serviceID)
	})

	// Definitions
	r.register(domain.Definition{
		Name:        "get_feed_types",
		Description: "Get all available feed type definitions",
		Args:        []domain.ArgSpec{optionalStringSpec("locale", "Locale for localized labels (e.g., 'en_US')")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetFeedTypes(ctx, optionalString(args, "locale"))
	})

	r.register(domain.Definition{
		Name:        "get_tool_definitions",
		Description: "Get all available tool definitions for analytics",
		Args:        []domain.ArgSpec{optionalStringSpec("locale", "Locale for localized labels")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetToolDefinitions(ctx, optionalString(args, "locale"))
	})

	r.register(domain.Definition{
		Name:        "get_output_definitions",
		Description: "Get all available output definitions",
		Args:        []domain.ArgSpec{optionalStringSpec("locale", "Locale for localized labels")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetOutputDefinitions(ctx, optionalString(args, "locale"))
	})

	r.register(domain.Definition{
		Name:        "get_source_definitions",
		Description: "Get all available source definitions",
		Args:        []domain.ArgSpec{optionalStringSpec("locale", "Locale for localized labels")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetSourceDefinitions(ctx, optionalString(args, "locale"))
	})

	// System
	r.register(domain.Definition{
		Name:        "get_version",
		Description: "Get the Velocity API version",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetVersion(ctx)
	})

	r.register(domain.Definition{
		Name:        "query_logs",
		Description: "Query system logs with various filters",
		Args:        []domain.ArgSpec{requiredObject("query_params", "Query parameters for filtering logs")},
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		queryParams, err := objectArg(args, "query_params")
		if err != nil {
			return nil, err
		}
		return api.QueryLogs(ctx, queryParams)
	})

	r.register(domain.Definition{
		Name:        "export_configuration",
		Description: "Export a snapshot of the current configuration",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.ExportConfiguration(ctx)
	})

	r.register(domain.Definition{
		Name:        "get_tenant_metrics",
		Description: "Get tenant-level metrics summary",
	}, func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return api.GetTenantMetricsSummary(ctx)
	})

	return r
}
