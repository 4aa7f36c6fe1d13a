package goal

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ativa"
	GoalStatusCompleted GoalStatus = "concluida"
	GoalStatusCanceled  GoalStatus = "cancelada"
)

var AllStatuses = []GoalStatus{
	GoalStatusActive,
	GoalStatusCompleted,
	GoalStatusCanceled,
}

func (s GoalStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
