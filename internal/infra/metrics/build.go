package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(buildInfo, botInfo)
}

var (
	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "A constant metric with labels for version and commit hash.",
		},
		[]string{"version", "commit"},
	)

	botInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bot_info",
			Help: "A constant metric labeled with the authorized bot account.",
		},
		[]string{"username"},
	)
)

func SetBuildInfo(version, commit string) {
	buildInfo.WithLabelValues(version, commit).Set(1)
}

func SetBotInfo(username string) {
	botInfo.WithLabelValues(username).Set(1)
}
