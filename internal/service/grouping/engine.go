package grouping

import (
	"sort"

	"github.com/m04kA/SMC-CartService/internal/domain"
	"github.com/m04kA/SMC-CartService/pkg/types"
)

// Engine собирает позиции корзины в непрерывные блоки посещений
// Engine не хранит состояния: результат полностью определяется входным списком
type Engine struct {
	logger Logger
}

// NewEngine создает новый экземпляр движка группировки
func NewEngine(logger Logger) *Engine {
	return &Engine{logger: logger}
}

type parsedItem struct {
	item domain.CartLineItem
	span types.TimeRange
}

// Group группирует позиции по (roomId, date), сортирует их по времени начала
// и склеивает слоты, где конец предыдущего совпадает с началом следующего.
//
// Порядок групп: порядок первого появления пары (roomId, date) во входном списке,
// внутри пары - хронологический. Позиции с некорректным временем не склеиваются,
// каждая из них становится отдельной группой с флагом InvalidTime в конце своей пары.
func (e *Engine) Group(items []domain.CartLineItem) []domain.MergedGroup {
	if len(items) == 0 {
		return []domain.MergedGroup{}
	}

	// 1. Разбиваем на корзины по (roomId, date) с сохранением порядка появления
	buckets := make(map[string][]domain.CartLineItem)
	order := make([]string, 0)
	for _, item := range items {
		key := item.GroupKey()
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], item)
	}

	// 2. Группируем каждую корзину отдельно
	result := make([]domain.MergedGroup, 0, len(items))
	for _, key := range order {
		result = append(result, e.groupBucket(buckets[key])...)
	}

	return result
}

// groupBucket группирует позиции одной комнаты на одну дату
func (e *Engine) groupBucket(items []domain.CartLineItem) []domain.MergedGroup {
	parsed := make([]parsedItem, 0, len(items))
	invalid := make([]domain.CartLineItem, 0)

	for _, item := range items {
		span, err := types.ParseTimeRange(item.Time)
		if err != nil {
			e.logger.Warn("Group: room=%d, date=%s has malformed time %q: %v", item.RoomID, item.Date, item.Time, err)
			invalid = append(invalid, item)
			continue
		}
		parsed = append(parsed, parsedItem{item: item, span: span})
	}

	// Стабильная сортировка: при равном начале сохраняется порядок корзины
	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].span.StartMinutes() < parsed[j].span.StartMinutes()
	})

	groups := make([]domain.MergedGroup, 0, len(items))

	var current *builder
	// closed интервал закрытой группы с самым поздним концом
	var closed *types.TimeRange
	for _, p := range parsed {
		if current != nil && current.span.Touches(p.span) {
			current.add(p)
			continue
		}

		if current != nil {
			groups = append(groups, current.build())
			if closed == nil || current.span.EndMinutes() > closed.EndMinutes() {
				span := current.span
				closed = &span
			}
		}

		current = newBuilder(p)
		// Пересечение с уже закрытыми группами не склеивается, только помечается
		current.overlapping = closed != nil && p.span.Overlaps(*closed)
	}

	if current != nil {
		groups = append(groups, current.build())
	}

	for _, item := range invalid {
		groups = append(groups, invalidGroup(item))
	}

	return groups
}

// builder накапливает одну группу
type builder struct {
	group       domain.MergedGroup
	span        types.TimeRange
	overlapping bool
}

func newBuilder(p parsedItem) *builder {
	b := &builder{
		group: domain.MergedGroup{
			RoomID:         p.item.RoomID,
			RoomName:       p.item.RoomName,
			Photo:          p.item.Photo,
			Date:           p.item.Date,
			ExpertServices: make([]domain.ExpertService, 0, len(p.item.ExpertServices)),
			ExtraServices:  make([]domain.ExtraService, 0, len(p.item.ExtraServices)),
			OriginalItems:  make([]domain.CartLineItem, 0, 1),
		},
		span: p.span,
	}
	b.absorb(p.item)
	return b
}

// add склеивает следующую смежную позицию с группой
func (b *builder) add(p parsedItem) {
	b.span = b.span.ExtendTo(p.span)
	b.absorb(p.item)
}

func (b *builder) absorb(item domain.CartLineItem) {
	b.group.BasePrice += item.BasePrice
	b.group.TotalPrice += item.TotalPrice
	b.group.ExpertServices = MergeExpertServices(b.group.ExpertServices, item.ExpertServices)
	b.group.ExtraServices = MergeExtraServices(b.group.ExtraServices, item.ExtraServices)
	b.group.OriginalItems = append(b.group.OriginalItems, item)
}

func (b *builder) build() domain.MergedGroup {
	g := b.group
	g.Time = b.span.String()
	g.Overlapping = b.overlapping
	return g
}

func invalidGroup(item domain.CartLineItem) domain.MergedGroup {
	return domain.MergedGroup{
		RoomID:         item.RoomID,
		RoomName:       item.RoomName,
		Photo:          item.Photo,
		Date:           item.Date,
		Time:           item.Time,
		BasePrice:      item.BasePrice,
		TotalPrice:     item.TotalPrice,
		ExpertServices: MergeExpertServices(nil, item.ExpertServices),
		ExtraServices:  MergeExtraServices(nil, item.ExtraServices),
		OriginalItems:  []domain.CartLineItem{item},
		InvalidTime:    true,
	}
}
