package entity

import "time"

// AnalysisReport é o agregado entregue à camada de exportação: o conjunto
// normalizado mais todos os resultados derivados dele.
type AnalysisReport struct {
	ID              string            `json:"id"`
	GeneratedAt     time.Time         `json:"generated_at"`
	SourceFile      string            `json:"source_file"`
	DroppedRows     int               `json:"dropped_rows"`
	Dataset         *Dataset          `json:"dataset"`
	Indicators      IndicatorSet      `json:"indicators"`
	Views           AggregationViews  `json:"views"`
	Anomalies       AnomalyReport     `json:"anomalies"`
	Recommendations RecommendationSet `json:"recommendations"`
}
