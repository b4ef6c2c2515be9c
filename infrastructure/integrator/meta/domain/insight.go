package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Action é um contador de ação reportado pela Graph API
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// CampaignDailyInsight é a linha de insights de um dia para uma campanha,
// como a Graph API devolve: campos numéricos vêm como string.
type CampaignDailyInsight struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdSetID      string   `json:"adset_id"`
	AdID         string   `json:"ad_id"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions"`
	Objective    string   `json:"objective"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// BreakdownInsight é a linha de insights segmentada por uma dimensão.
// O valor da dimensão chega em campos distintos conforme o breakdown pedido.
type BreakdownInsight struct {
	CampaignID        string   `json:"campaign_id"`
	Impressions       string   `json:"impressions"`
	Clicks            string   `json:"clicks"`
	Spend             string   `json:"spend"`
	Actions           []Action `json:"actions"`
	Age               string   `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	DevicePlatform    string   `json:"device_platform,omitempty"`
	PublisherPlatform string   `json:"publisher_platform,omitempty"`
	Region            string   `json:"region,omitempty"`
	DateStart         string   `json:"date_start"`
}

// DimensionValue devolve o valor da dimensão pedida, priorizando o campo
// preenchido pela API
func (b *BreakdownInsight) DimensionValue() string {
	for _, value := range []string{b.Age, b.Gender, b.DevicePlatform, b.PublisherPlatform, b.Region} {
		if value != "" {
			return value
		}
	}
	return "unknown"
}

// Mapeamento de "objective" -> "action_type" do resultado principal da campanha
var MetaObjectiveToActionType = map[string]string{
	"LINK_CLICKS":           "link_click",
	"POST_ENGAGEMENT":       "post_engagement",
	"LEAD_GENERATION":       "lead",
	"CONVERSIONS":           "offsite_conversion",
	"PRODUCT_CATALOG_SALES": "offsite_conversion.fb_pixel_purchase",
	"MESSAGES":              "onsite_conversion.messaging_first_reply",
	"OUTCOME_LEADS":         "lead",
	"OUTCOME_SALES":         "offsite_conversion.fb_pixel_purchase",
	"OUTCOME_TRAFFIC":       "link_click",
	"OUTCOME_ENGAGEMENT":    "onsite_conversion.messaging_conversation_started_7d",
}

const (
	actionTypeConversion = "offsite_conversion"
	actionTypeMessage    = "onsite_conversion.messaging_conversation_started_7d"
)

// ResultCount devolve o contador da ação que representa o resultado principal
// da campanha, derivada do objetivo
func (i *CampaignDailyInsight) ResultCount() int {
	actionType, ok := MetaObjectiveToActionType[i.Objective]
	if !ok {
		return 0
	}
	return ActionCount(i.Actions, actionType)
}

// ConversionCount devolve o contador de conversões de pixel da linha
func (i *CampaignDailyInsight) ConversionCount() int {
	return ActionCount(i.Actions, actionTypeConversion)
}

// MessageCount devolve o contador de conversas iniciadas da linha
func (i *CampaignDailyInsight) MessageCount() int {
	return ActionCount(i.Actions, actionTypeMessage)
}

// ParseCount converte um contador em string para int, tratando campo ausente ou
// malformado como 0 para não envenenar a sincronização inteira
func ParseCount(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("value", value).Warn("Contador inválido recebido da Graph API")
		return 0
	}

	return parsed
}

// ParseAmount converte um valor monetário em string para float64, tratando campo
// ausente ou malformado como 0
func ParseAmount(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Valor monetário inválido recebido da Graph API")
		return 0
	}

	return parsed
}

// ActionCount devolve o valor da ação do tipo informado, 0 quando ausente
func ActionCount(actions []Action, actionType string) int {
	for _, action := range actions {
		if action.ActionType == actionType {
			return ParseCount(action.Value)
		}
	}
	return 0
}
