package event

const (
	ShieldActivated EventType = "ShieldActivated" // Щит поднят
	ShieldRejected  EventType = "ShieldRejected"  // Попытка активации не удалась
	ShieldExpired   EventType = "ShieldExpired"   // Время действия истекло
	ShieldRecharged EventType = "ShieldRecharged" // Восстановлен один заряд
	GameRestarted   EventType = "GameRestarted"
	ConfigReloaded  EventType = "ConfigReloaded"
)

// ShieldEventData — данные событий щита.
type ShieldEventData struct {
	Charges  int
	Cooldown float64
}
