// Package metrics records documentation run metrics.
//
// Components take a Recorder and default to NoopRecorder, so call sites never
// need nil checks:
//
//	t := task.New(cfg, eng, task.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the given registry and
// HTTPHandler exposes that registry for scraping (used by watch mode).
package metrics
