package orderstate

import (
	"sort"

	"dispatch/internal/entities"
)

// Хелперы над каталогом статусов организации. Машина состояний
// не знает имен статусов — только флаги и sort.

func FindStatus(statuses []entities.OrderStatus, id int64) (entities.OrderStatus, bool) {
	for _, s := range statuses {
		if s.ID == id {
			return s, true
		}
	}
	return entities.OrderStatus{}, false
}

// FirstSortStatus самый ранний статус прогрессии.
func FirstSortStatus(statuses []entities.OrderStatus) (entities.OrderStatus, bool) {
	if len(statuses) == 0 {
		return entities.OrderStatus{}, false
	}

	ordered := make([]entities.OrderStatus, len(statuses))
	copy(ordered, statuses)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Sort < ordered[j].Sort })

	return ordered[0], true
}

// OnWayStatus назначенный организацией статус "в пути".
func OnWayStatus(statuses []entities.OrderStatus) (entities.OrderStatus, bool) {
	var candidates []entities.OrderStatus
	for _, s := range statuses {
		if s.OnWay {
			candidates = append(candidates, s)
		}
	}
	return FirstSortStatus(candidates)
}
