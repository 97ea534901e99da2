package grouping

import "github.com/m04kA/SMC-CartService/internal/domain"

// MergeExpertServices добавляет incoming к existing без дублей
// Совпавший специалист пропускается, новый добавляется копией
func MergeExpertServices(existing, incoming []domain.ExpertService) []domain.ExpertService {
	result := make([]domain.ExpertService, 0, len(existing)+len(incoming))
	result = append(result, existing...)

	for _, s := range incoming {
		if indexOfExpert(result, s) >= 0 {
			continue
		}
		result = append(result, copyExpert(s))
	}

	return result
}

// MergeExtraServices добавляет incoming к existing, суммируя количество совпавших услуг
// Отсутствующее количество считается равным 1
func MergeExtraServices(existing, incoming []domain.ExtraService) []domain.ExtraService {
	result := make([]domain.ExtraService, 0, len(existing)+len(incoming))
	result = append(result, existing...)

	for _, s := range incoming {
		if idx := indexOfExtra(result, s); idx >= 0 {
			result[idx].Quantity = result[idx].EffectiveQuantity() + s.EffectiveQuantity()
			continue
		}
		c := copyExtra(s)
		c.Quantity = s.EffectiveQuantity()
		result = append(result, c)
	}

	return result
}

func indexOfExpert(list []domain.ExpertService, s domain.ExpertService) int {
	for i := range list {
		if domain.SameExpertService(list[i], s) {
			return i
		}
	}
	return -1
}

func indexOfExtra(list []domain.ExtraService, s domain.ExtraService) int {
	for i := range list {
		if domain.SameExtraService(list[i], s) {
			return i
		}
	}
	return -1
}

func copyExpert(s domain.ExpertService) domain.ExpertService {
	c := s
	if s.ID != nil {
		id := *s.ID
		c.ID = &id
	}
	return c
}

func copyExtra(s domain.ExtraService) domain.ExtraService {
	c := s
	if s.ID != nil {
		id := *s.ID
		c.ID = &id
	}
	return c
}
