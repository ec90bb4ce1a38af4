package rates

import (
	"github.com/valeriaulyamaeva/fxhub-backend/models"
	"github.com/valeriaulyamaeva/fxhub-backend/utils"
)

// CalculateChange считает тренд и величину изменения между текущим значением
// и baseline. Порог тот же, что у PreviousRate: если бы допуски расходились,
// классификация и числовая дельта могли бы противоречить друг другу
// ("stable" с ненулевым change_abs).
func (s *Service) CalculateChange(current, previous *float64) models.Change {
	if current == nil || previous == nil {
		return models.Change{Trend: models.TrendStable}
	}

	changeAbs := utils.Round2(*current - *previous)
	var changePct float64
	if *previous != 0 {
		changePct = utils.Round2(changeAbs / *previous * 100)
	}

	switch {
	case changeAbs > s.epsilon:
		return models.Change{Trend: models.TrendUp, ChangeAbs: changeAbs, ChangePct: changePct}
	case changeAbs < -s.epsilon:
		return models.Change{Trend: models.TrendDown, ChangeAbs: changeAbs, ChangePct: changePct}
	default:
		// Изменение в пределах шума представления — обнуляем дельты,
		// чтобы не показывать floating-point пыль.
		return models.Change{Trend: models.TrendStable}
	}
}
