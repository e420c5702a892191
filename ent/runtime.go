// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/page"
	"github.com/metrics-lab/staticpress/ent/schema"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescIteration is the schema descriptor for iteration field.
	agentrunDescIteration := agentrunFields[3].Descriptor()
	// agentrun.DefaultIteration holds the default value on creation for the iteration field.
	agentrun.DefaultIteration = agentrunDescIteration.Default.(int)
	// agentrunDescMaxIterations is the schema descriptor for max_iterations field.
	agentrunDescMaxIterations := agentrunFields[4].Descriptor()
	// agentrun.DefaultMaxIterations holds the default value on creation for the max_iterations field.
	agentrun.DefaultMaxIterations = agentrunDescMaxIterations.Default.(int)
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[11].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	// agentrunDescUpdatedAt is the schema descriptor for updated_at field.
	agentrunDescUpdatedAt := agentrunFields[12].Descriptor()
	// agentrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrun.DefaultUpdatedAt = agentrunDescUpdatedAt.Default.(func() time.Time)
	// agentrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrun.UpdateDefaultUpdatedAt = agentrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	alertlogFields := schema.AlertLog{}.Fields()
	_ = alertlogFields
	// alertlogDescFiredAt is the schema descriptor for fired_at field.
	alertlogDescFiredAt := alertlogFields[5].Descriptor()
	// alertlog.DefaultFiredAt holds the default value on creation for the fired_at field.
	alertlog.DefaultFiredAt = alertlogDescFiredAt.Default.(func() time.Time)
	alertruleFields := schema.AlertRule{}.Fields()
	_ = alertruleFields
	// alertruleDescEnabled is the schema descriptor for enabled field.
	alertruleDescEnabled := alertruleFields[5].Descriptor()
	// alertrule.DefaultEnabled holds the default value on creation for the enabled field.
	alertrule.DefaultEnabled = alertruleDescEnabled.Default.(bool)
	// alertruleDescCreatedAt is the schema descriptor for created_at field.
	alertruleDescCreatedAt := alertruleFields[6].Descriptor()
	// alertrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	alertrule.DefaultCreatedAt = alertruleDescCreatedAt.Default.(func() time.Time)
	assetoverrideFields := schema.AssetOverride{}.Fields()
	_ = assetoverrideFields
	// assetoverrideDescCreatedAt is the schema descriptor for created_at field.
	assetoverrideDescCreatedAt := assetoverrideFields[5].Descriptor()
	// assetoverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	assetoverride.DefaultCreatedAt = assetoverrideDescCreatedAt.Default.(func() time.Time)
	// assetoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	assetoverrideDescUpdatedAt := assetoverrideFields[6].Descriptor()
	// assetoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assetoverride.DefaultUpdatedAt = assetoverrideDescUpdatedAt.Default.(func() time.Time)
	// assetoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assetoverride.UpdateDefaultUpdatedAt = assetoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	buildFields := schema.Build{}.Fields()
	_ = buildFields
	// buildDescPagesTotal is the schema descriptor for pages_total field.
	buildDescPagesTotal := buildFields[7].Descriptor()
	// build.DefaultPagesTotal holds the default value on creation for the pages_total field.
	build.DefaultPagesTotal = buildDescPagesTotal.Default.(int)
	// buildDescPagesProcessed is the schema descriptor for pages_processed field.
	buildDescPagesProcessed := buildFields[8].Descriptor()
	// build.DefaultPagesProcessed holds the default value on creation for the pages_processed field.
	build.DefaultPagesProcessed = buildDescPagesProcessed.Default.(int)
	// buildDescIframesReplaced is the schema descriptor for iframes_replaced field.
	buildDescIframesReplaced := buildFields[11].Descriptor()
	// build.DefaultIframesReplaced holds the default value on creation for the iframes_replaced field.
	build.DefaultIframesReplaced = buildDescIframesReplaced.Default.(int)
	// buildDescScriptsRemoved is the schema descriptor for scripts_removed field.
	buildDescScriptsRemoved := buildFields[12].Descriptor()
	// build.DefaultScriptsRemoved holds the default value on creation for the scripts_removed field.
	build.DefaultScriptsRemoved = buildDescScriptsRemoved.Default.(int)
	// buildDescErrorRetryable is the schema descriptor for error_retryable field.
	buildDescErrorRetryable := buildFields[18].Descriptor()
	// build.DefaultErrorRetryable holds the default value on creation for the error_retryable field.
	build.DefaultErrorRetryable = buildDescErrorRetryable.Default.(bool)
	// buildDescRetryCount is the schema descriptor for retry_count field.
	buildDescRetryCount := buildFields[21].Descriptor()
	// build.DefaultRetryCount holds the default value on creation for the retry_count field.
	build.DefaultRetryCount = buildDescRetryCount.Default.(int)
	// buildDescCreatedAt is the schema descriptor for created_at field.
	buildDescCreatedAt := buildFields[22].Descriptor()
	// build.DefaultCreatedAt holds the default value on creation for the created_at field.
	build.DefaultCreatedAt = buildDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[5].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescMaxRetries is the schema descriptor for max_retries field.
	jobDescMaxRetries := jobFields[6].Descriptor()
	// job.DefaultMaxRetries holds the default value on creation for the max_retries field.
	job.DefaultMaxRetries = jobDescMaxRetries.Default.(int)
	// jobDescNotBefore is the schema descriptor for not_before field.
	jobDescNotBefore := jobFields[7].Descriptor()
	// job.DefaultNotBefore holds the default value on creation for the not_before field.
	job.DefaultNotBefore = jobDescNotBefore.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[11].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[12].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	measurementcomparisonFields := schema.MeasurementComparison{}.Fields()
	_ = measurementcomparisonFields
	// measurementcomparisonDescPayloadSavingsBytes is the schema descriptor for payload_savings_bytes field.
	measurementcomparisonDescPayloadSavingsBytes := measurementcomparisonFields[9].Descriptor()
	// measurementcomparison.DefaultPayloadSavingsBytes holds the default value on creation for the payload_savings_bytes field.
	measurementcomparison.DefaultPayloadSavingsBytes = measurementcomparisonDescPayloadSavingsBytes.Default.(int64)
	// measurementcomparisonDescCreatedAt is the schema descriptor for created_at field.
	measurementcomparisonDescCreatedAt := measurementcomparisonFields[12].Descriptor()
	// measurementcomparison.DefaultCreatedAt holds the default value on creation for the created_at field.
	measurementcomparison.DefaultCreatedAt = measurementcomparisonDescCreatedAt.Default.(func() time.Time)
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescLastCrawledAt is the schema descriptor for last_crawled_at field.
	pageDescLastCrawledAt := pageFields[4].Descriptor()
	// page.DefaultLastCrawledAt holds the default value on creation for the last_crawled_at field.
	page.DefaultLastCrawledAt = pageDescLastCrawledAt.Default.(func() time.Time)
	// page.UpdateDefaultLastCrawledAt holds the default value on update for the last_crawled_at field.
	page.UpdateDefaultLastCrawledAt = pageDescLastCrawledAt.UpdateDefault.(func() time.Time)
	settingshistoryFields := schema.SettingsHistory{}.Fields()
	_ = settingshistoryFields
	// settingshistoryDescActor is the schema descriptor for actor field.
	settingshistoryDescActor := settingshistoryFields[3].Descriptor()
	// settingshistory.DefaultActor holds the default value on creation for the actor field.
	settingshistory.DefaultActor = settingshistoryDescActor.Default.(string)
	// settingshistoryDescCreatedAt is the schema descriptor for created_at field.
	settingshistoryDescCreatedAt := settingshistoryFields[4].Descriptor()
	// settingshistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	settingshistory.DefaultCreatedAt = settingshistoryDescCreatedAt.Default.(func() time.Time)
	siteFields := schema.Site{}.Fields()
	_ = siteFields
	// siteDescPageCount is the schema descriptor for page_count field.
	siteDescPageCount := siteFields[8].Descriptor()
	// site.DefaultPageCount holds the default value on creation for the page_count field.
	site.DefaultPageCount = siteDescPageCount.Default.(int)
	// siteDescTotalBytes is the schema descriptor for total_bytes field.
	siteDescTotalBytes := siteFields[9].Descriptor()
	// site.DefaultTotalBytes holds the default value on creation for the total_bytes field.
	site.DefaultTotalBytes = siteDescTotalBytes.Default.(int64)
	// siteDescCreatedAt is the schema descriptor for created_at field.
	siteDescCreatedAt := siteFields[12].Descriptor()
	// site.DefaultCreatedAt holds the default value on creation for the created_at field.
	site.DefaultCreatedAt = siteDescCreatedAt.Default.(func() time.Time)
	// siteDescUpdatedAt is the schema descriptor for updated_at field.
	siteDescUpdatedAt := siteFields[13].Descriptor()
	// site.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	site.DefaultUpdatedAt = siteDescUpdatedAt.Default.(func() time.Time)
	// site.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	site.UpdateDefaultUpdatedAt = siteDescUpdatedAt.UpdateDefault.(func() time.Time)
}
