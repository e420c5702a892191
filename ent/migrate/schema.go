// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"analyzing", "planning", "building", "verifying", "reviewing", "complete", "failed"}, Default: "analyzing"},
		{Name: "iteration", Type: field.TypeInt, Default: 0},
		{Name: "max_iterations", Type: field.TypeInt, Default: 10},
		{Name: "phase_timings", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "checkpoint", Type: field.TypeJSON, Nullable: true},
		{Name: "current_build_id", Type: field.TypeString, Nullable: true},
		{Name: "workspace_dir", Type: field.TypeString, Nullable: true},
		{Name: "final_verdict", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "site_id", Type: field.TypeString},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_runs_sites_agent_runs",
				Columns:    []*schema.Column{AgentRunsColumns[13]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_site_id_phase",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[13], AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_site_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[13], AgentRunsColumns[10]},
			},
		},
	}
	// AlertLogsColumns holds the columns for the "alert_logs" table.
	AlertLogsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "observed_value", Type: field.TypeFloat64},
		{Name: "fired_at", Type: field.TypeTime},
		{Name: "site_id", Type: field.TypeString},
	}
	// AlertLogsTable holds the schema information for the "alert_logs" table.
	AlertLogsTable = &schema.Table{
		Name:       "alert_logs",
		Columns:    AlertLogsColumns,
		PrimaryKey: []*schema.Column{AlertLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alert_logs_sites_alert_logs",
				Columns:    []*schema.Column{AlertLogsColumns[5]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alertlog_site_id_fired_at",
				Unique:  false,
				Columns: []*schema.Column{AlertLogsColumns[5], AlertLogsColumns[4]},
			},
		},
	}
	// AlertRulesColumns holds the columns for the "alert_rules" table.
	AlertRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "metric", Type: field.TypeString},
		{Name: "operator", Type: field.TypeEnum, Enums: []string{"lt", "gt"}},
		{Name: "threshold", Type: field.TypeFloat64},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "site_id", Type: field.TypeString},
	}
	// AlertRulesTable holds the schema information for the "alert_rules" table.
	AlertRulesTable = &schema.Table{
		Name:       "alert_rules",
		Columns:    AlertRulesColumns,
		PrimaryKey: []*schema.Column{AlertRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alert_rules_sites_alert_rules",
				Columns:    []*schema.Column{AlertRulesColumns[6]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alertrule_site_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{AlertRulesColumns[6], AlertRulesColumns[4]},
			},
		},
	}
	// AssetOverridesColumns holds the columns for the "asset_overrides" table.
	AssetOverridesColumns = []*schema.Column{
		{Name: "override_id", Type: field.TypeString, Unique: true},
		{Name: "url_pattern", Type: field.TypeString},
		{Name: "asset_class", Type: field.TypeString, Nullable: true},
		{Name: "settings", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "site_id", Type: field.TypeString},
	}
	// AssetOverridesTable holds the schema information for the "asset_overrides" table.
	AssetOverridesTable = &schema.Table{
		Name:       "asset_overrides",
		Columns:    AssetOverridesColumns,
		PrimaryKey: []*schema.Column{AssetOverridesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "asset_overrides_sites_asset_overrides",
				Columns:    []*schema.Column{AssetOverridesColumns[6]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assetoverride_site_id_url_pattern",
				Unique:  true,
				Columns: []*schema.Column{AssetOverridesColumns[6], AssetOverridesColumns[1]},
			},
			{
				Name:    "assetoverride_site_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssetOverridesColumns[6], AssetOverridesColumns[4]},
			},
		},
	}
	// BuildsColumns holds the columns for the "builds" table.
	BuildsColumns = []*schema.Column{
		{Name: "build_id", Type: field.TypeString, Unique: true},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"full", "partial"}, Default: "full"},
		{Name: "triggered_by", Type: field.TypeEnum, Enums: []string{"user", "webhook", "schedule", "agent"}, Default: "user"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "crawling", "optimizing", "deploying", "success", "failed", "cancelled"}, Default: "queued"},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "checkpoint_phase", Type: field.TypeString, Nullable: true},
		{Name: "pages_total", Type: field.TypeInt, Default: 0},
		{Name: "pages_processed", Type: field.TypeInt, Default: 0},
		{Name: "original_bytes", Type: field.TypeJSON, Nullable: true},
		{Name: "optimized_bytes", Type: field.TypeJSON, Nullable: true},
		{Name: "iframes_replaced", Type: field.TypeInt, Default: 0},
		{Name: "scripts_removed", Type: field.TypeInt, Default: 0},
		{Name: "score_before", Type: field.TypeFloat64, Nullable: true},
		{Name: "score_after", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_phase", Type: field.TypeString, Nullable: true},
		{Name: "error_step", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_retryable", Type: field.TypeBool, Default: false},
		{Name: "resolved_settings", Type: field.TypeJSON, Nullable: true},
		{Name: "log", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "site_id", Type: field.TypeString},
	}
	// BuildsTable holds the schema information for the "builds" table.
	BuildsTable = &schema.Table{
		Name:       "builds",
		Columns:    BuildsColumns,
		PrimaryKey: []*schema.Column{BuildsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "builds_sites_builds",
				Columns:    []*schema.Column{BuildsColumns[24]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "build_site_id_status",
				Unique:  false,
				Columns: []*schema.Column{BuildsColumns[24], BuildsColumns[3]},
			},
			{
				Name:    "build_site_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BuildsColumns[24], BuildsColumns[21]},
			},
			{
				Name:    "build_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BuildsColumns[3], BuildsColumns[21]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"build", "agent"}},
		{Name: "site_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ready", "reserved", "succeeded", "failed", "cancelled"}, Default: "ready"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 5},
		{Name: "not_before", Type: field.TypeTime},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_not_before_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[7], JobsColumns[11]},
			},
			{
				Name:    "job_site_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[4]},
			},
			{
				Name:    "job_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[8]},
			},
		},
	}
	// MeasurementComparisonsColumns holds the columns for the "measurement_comparisons" table.
	MeasurementComparisonsColumns = []*schema.Column{
		{Name: "measurement_id", Type: field.TypeString, Unique: true},
		{Name: "build_id", Type: field.TypeString, Nullable: true},
		{Name: "strategy", Type: field.TypeEnum, Enums: []string{"mobile", "desktop"}},
		{Name: "original_score", Type: field.TypeFloat64},
		{Name: "optimized_score", Type: field.TypeFloat64},
		{Name: "original_vitals", Type: field.TypeJSON, Nullable: true},
		{Name: "optimized_vitals", Type: field.TypeJSON, Nullable: true},
		{Name: "improvements", Type: field.TypeJSON, Nullable: true},
		{Name: "payload_savings_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "original_raw", Type: field.TypeJSON, Nullable: true},
		{Name: "optimized_raw", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "site_id", Type: field.TypeString},
	}
	// MeasurementComparisonsTable holds the schema information for the "measurement_comparisons" table.
	MeasurementComparisonsTable = &schema.Table{
		Name:       "measurement_comparisons",
		Columns:    MeasurementComparisonsColumns,
		PrimaryKey: []*schema.Column{MeasurementComparisonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "measurement_comparisons_sites_measurements",
				Columns:    []*schema.Column{MeasurementComparisonsColumns[12]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "measurementcomparison_site_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MeasurementComparisonsColumns[12], MeasurementComparisonsColumns[11]},
			},
			{
				Name:    "measurementcomparison_build_id",
				Unique:  false,
				Columns: []*schema.Column{MeasurementComparisonsColumns[1]},
			},
		},
	}
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "page_id", Type: field.TypeString, Unique: true},
		{Name: "path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "last_crawled_at", Type: field.TypeTime},
		{Name: "site_id", Type: field.TypeString},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pages_sites_pages",
				Columns:    []*schema.Column{PagesColumns[4]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "page_site_id_path",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[4], PagesColumns[1]},
			},
		},
	}
	// SettingsHistoriesColumns holds the columns for the "settings_histories" table.
	SettingsHistoriesColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "actor", Type: field.TypeString, Default: "api-client"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "site_id", Type: field.TypeString},
	}
	// SettingsHistoriesTable holds the schema information for the "settings_histories" table.
	SettingsHistoriesTable = &schema.Table{
		Name:       "settings_histories",
		Columns:    SettingsHistoriesColumns,
		PrimaryKey: []*schema.Column{SettingsHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "settings_histories_sites_settings_history",
				Columns:    []*schema.Column{SettingsHistoriesColumns[4]},
				RefColumns: []*schema.Column{SitesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "settingshistory_site_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SettingsHistoriesColumns[4], SettingsHistoriesColumns[3]},
			},
		},
	}
	// SitesColumns holds the columns for the "sites" table.
	SitesColumns = []*schema.Column{
		{Name: "site_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "source_url", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "error"}, Default: "pending"},
		{Name: "last_build_id", Type: field.TypeString, Nullable: true},
		{Name: "last_build_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"queued", "crawling", "optimizing", "deploying", "success", "failed", "cancelled"}},
		{Name: "edge_url", Type: field.TypeString, Nullable: true},
		{Name: "edge_project", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "total_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "webhook_secret", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SitesTable holds the schema information for the "sites" table.
	SitesTable = &schema.Table{
		Name:       "sites",
		Columns:    SitesColumns,
		PrimaryKey: []*schema.Column{SitesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "site_status",
				Unique:  false,
				Columns: []*schema.Column{SitesColumns[3]},
			},
			{
				Name:    "site_source_url",
				Unique:  false,
				Columns: []*schema.Column{SitesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		AlertLogsTable,
		AlertRulesTable,
		AssetOverridesTable,
		BuildsTable,
		JobsTable,
		MeasurementComparisonsTable,
		PagesTable,
		SettingsHistoriesTable,
		SitesTable,
	}
)

func init() {
	AgentRunsTable.ForeignKeys[0].RefTable = SitesTable
	AlertLogsTable.ForeignKeys[0].RefTable = SitesTable
	AlertRulesTable.ForeignKeys[0].RefTable = SitesTable
	AssetOverridesTable.ForeignKeys[0].RefTable = SitesTable
	BuildsTable.ForeignKeys[0].RefTable = SitesTable
	MeasurementComparisonsTable.ForeignKeys[0].RefTable = SitesTable
	PagesTable.ForeignKeys[0].RefTable = SitesTable
	SettingsHistoriesTable.ForeignKeys[0].RefTable = SitesTable
}
