package app

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics counts page traffic and lookups that found nothing.
type metrics struct {
	pageViews    *prometheus.CounterVec
	lookupMisses *prometheus.CounterVec
	reloads      *prometheus.CounterVec
	entities     *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamewiki",
			Name:      "page_views_total",
			Help:      "Rendered wiki pages by kind.",
		}, []string{"kind"}),
		lookupMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamewiki",
			Name:      "lookup_misses_total",
			Help:      "Page and API lookups whose id matched no entity, by kind.",
		}, []string{"kind"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gamewiki",
			Name:      "catalog_reloads_total",
			Help:      "Catalog reloads by result.",
		}, []string{"result"}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "gamewiki",
			Name:      "catalog_entities",
			Help:      "Entities in the published catalog, by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.pageViews, m.lookupMisses, m.reloads, m.entities)
	return m
}
