package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eduadvisor"

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	ReportsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "consultant_reports_created_total", Help: "Consultant reports created",
	})
	CallLogs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "call_logs_total", Help: "Call logs written",
	}, []string{"call_type"})
	LLMRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "llm_requests_total", Help: "Completion requests sent to the LLM service",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ReportsCreated, CallLogs, LLMRequests)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func IncCallLog(callType string) { CallLogs.WithLabelValues(callType).Inc() }

func IncLLM(outcome string) { LLMRequests.WithLabelValues(outcome).Inc() }
