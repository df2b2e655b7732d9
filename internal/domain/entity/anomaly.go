package entity

import "time"

// GlobalOutliers é o resultado da detecção de outliers pelo método IQR
// sobre todos os valores do conjunto.
type GlobalOutliers struct {
	LowerBound   float64       `json:"lower_bound"`
	UpperBound   float64       `json:"upper_bound"`
	Transactions []Transaction `json:"transactions"`
}

// CategoryOutlier é um gasto muito acima da média da sua categoria.
type CategoryOutlier struct {
	Transaction  Transaction `json:"transaction"`
	CategoryMean float64     `json:"category_mean"`
	Deviations   float64     `json:"deviations"`
}

// AnomalyReport reúne as transações estatisticamente incomuns e os dias sem
// movimentação dentro do período observado. As transações referenciam o
// Dataset normalizado, não são cópias independentes dele.
type AnomalyReport struct {
	Global           GlobalOutliers    `json:"global"`
	CategoryOutliers []CategoryOutlier `json:"category_outliers"`
	SilentDays       []time.Time       `json:"silent_days"`
}
