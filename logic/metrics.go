package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"masto_bridge/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_metrics.go -package mocks masto_bridge/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartGatewayRequestOut(label string) IRequestObserver
	StartPollCycle() IRequestObserver
	ItemDelivered(kind string)
	PollFailed(kind string)
	CommandHandled(name string)
	ServiceStarted()
	BridgedAccounts(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                *shared.Config
	webRequestsIn      *prometheus.HistogramVec
	gatewayRequestsOut *prometheus.HistogramVec
	pollCycles         *prometheus.HistogramVec
	itemsDelivered     *prometheus.CounterVec
	pollsFailed        *prometheus.CounterVec
	commandsHandled    *prometheus.CounterVec
	serviceStarted     prometheus.Counter
	bridgedAccounts    prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of HTTP requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.gatewayRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "gateway_requests_out_duration",
		Help: "Duration in seconds of chat gateway requests made.",
	}, []string{"label"})
	prometheus.Register(res.gatewayRequestsOut)

	res.pollCycles = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "poll_cycle_duration",
		Help: "Duration in seconds of a full poll cycle over all accounts.",
	}, []string{"label"})
	prometheus.Register(res.pollCycles)

	res.itemsDelivered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "items_delivered",
		Help: "Number of posts and notifications delivered to chats",
	}, []string{"kind"})
	prometheus.Register(res.itemsDelivered)

	res.pollsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polls_failed",
		Help: "Number of feed checks that failed and will be retried",
	}, []string{"kind"})
	prometheus.Register(res.pollsFailed)

	res.commandsHandled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "commands_handled",
		Help: "Number of chat commands handled",
	}, []string{"name"})
	prometheus.Register(res.commandsHandled)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.bridgedAccounts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bridged_account_count",
		Help: "Number of logged-in Mastodon accounts",
	})
	prometheus.Register(res.bridgedAccounts)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartGatewayRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.gatewayRequestsOut}
}

func (m *metrics) StartPollCycle() IRequestObserver {
	return &requestObserver{"all", time.Now(), m.pollCycles}
}

func (m *metrics) ItemDelivered(kind string) {
	m.itemsDelivered.WithLabelValues(kind).Add(1)
}

func (m *metrics) PollFailed(kind string) {
	m.pollsFailed.WithLabelValues(kind).Add(1)
}

func (m *metrics) CommandHandled(name string) {
	m.commandsHandled.WithLabelValues(name).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) BridgedAccounts(count int) {
	m.bridgedAccounts.Set(float64(count))
}
