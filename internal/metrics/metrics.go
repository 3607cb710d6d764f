package metrics

import "github.com/prometheus/client_golang/prometheus"

var MailsSentTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "review_mails_sent_total",
		Help: "Total number of review mails confirmed sent",
	},
	[]string{"kind"}, // first, reminder
)

var MailErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "review_mail_errors_total",
		Help: "Total number of failed review mail send attempts",
	},
	[]string{"kind"},
)

var JobsQueuedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "review_jobs_queued_total",
		Help: "Total number of review jobs queued from order events",
	},
)

var SchedulerTicksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "review_scheduler_ticks_total",
		Help: "Total number of scheduler ticks",
	},
	[]string{"result"}, // ok, error
)

func Init() {
	prometheus.MustRegister(MailsSentTotal)
	prometheus.MustRegister(MailErrorsTotal)
	prometheus.MustRegister(JobsQueuedTotal)
	prometheus.MustRegister(SchedulerTicksTotal)
}
