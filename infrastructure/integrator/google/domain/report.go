package googledomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Campaign é a porção estrutural de uma linha de relatório da Google Ads API
type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

// Metrics é a porção de métricas de uma linha de relatório. Campos int64 chegam
// como string no JSON da API REST.
type Metrics struct {
	Impressions string  `json:"impressions"`
	Clicks      string  `json:"clicks"`
	CostMicros  string  `json:"costMicros"`
	Conversions float64 `json:"conversions"`
}

// Segments carrega as dimensões da linha: data e, quando pedida, o device
type Segments struct {
	Date   string `json:"date"`
	Device string `json:"device"`
}

// ReportRow é uma linha de resultado de uma consulta GAQL
type ReportRow struct {
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
	Segments Segments `json:"segments"`
}

// SearchResponse é o envelope de resposta do endpoint googleAds:search
type SearchResponse struct {
	Results       []ReportRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// APIError é o envelope de erro padrão das APIs Google
type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ParseCount converte um contador int64 serializado como string, tratando
// valor ausente ou malformado como 0
func ParseCount(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("value", value).Warn("Contador inválido recebido da Google Ads API")
		return 0
	}

	return parsed
}

// ParseCostMicros converte o custo em micros para o valor monetário em unidades
func ParseCostMicros(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Custo inválido recebido da Google Ads API")
		return 0
	}

	return float64(parsed) / 1_000_000
}
