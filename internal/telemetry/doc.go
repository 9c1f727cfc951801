// Package telemetry provides the logger and the Prometheus metrics used by
// the pairfold command. Metrics live on a private registry and are written
// out in text exposition format, suitable for a node_exporter textfile
// collector.
package telemetry
