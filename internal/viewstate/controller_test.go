package viewstate_test

import (
	"errors"
	"testing"

	"github.com/alexanderramin/launchweek/internal/plan"
	"github.com/alexanderramin/launchweek/internal/testutil"
	"github.com/alexanderramin/launchweek/internal/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type eventLog struct {
	events []viewstate.Event
}

func (l *eventLog) SelectionChanged(ev viewstate.Event) {
	l.events = append(l.events, ev)
}

func newDefaultController(t *testing.T, opts ...viewstate.Option) *viewstate.Controller {
	t.Helper()
	c, err := viewstate.New(plan.Default(), opts...)
	require.NoError(t, err)
	return c
}

func TestNew_StartsOnFirstKey(t *testing.T) {
	c := newDefaultController(t)

	assert.Equal(t, plan.Lunes, c.Selected())
	assert.Equal(t, "Lunes: Preparación y Pruebas Finales", c.Current().Title)
}

func TestNew_StartDay(t *testing.T) {
	c := newDefaultController(t, viewstate.WithStartDay(plan.Viernes))

	assert.Equal(t, plan.Viernes, c.Selected())
	assert.Equal(t, "Viernes: ¡DÍA DEL LANZAMIENTO!", c.Current().Title)
}

func TestNew_InvalidStartDay(t *testing.T) {
	_, err := viewstate.New(plan.Default(), viewstate.WithStartDay("festivo"))
	require.Error(t, err)
	assert.ErrorIs(t, err, viewstate.ErrInvalidSelection)
	assert.ErrorIs(t, err, plan.ErrKeyNotFound)
}

func TestNew_NilStore(t *testing.T) {
	_, err := viewstate.New(nil)
	assert.ErrorIs(t, err, plan.ErrEmptyPlan)
}

func TestSelectDay_EveryKeyYieldsItsRecord(t *testing.T) {
	c := newDefaultController(t)

	for _, key := range plan.WeekdayKeys {
		t.Run(key, func(t *testing.T) {
			want, err := plan.Default().Get(key)
			require.NoError(t, err)

			require.NoError(t, c.SelectDay(key))
			assert.Equal(t, key, c.Selected())
			assert.Equal(t, want.Title, c.Current().Title)
			assert.Equal(t, want, c.Current())
		})
	}
}

func TestSelectDay_NotifiesCounts(t *testing.T) {
	c := newDefaultController(t)
	log := &eventLog{}
	c.Subscribe(log)

	require.NoError(t, c.SelectDay(plan.Miercoles))

	require.Len(t, log.events, 1)
	ev := log.events[0]
	assert.Equal(t, plan.Miercoles, ev.Key)
	assert.Equal(t, "Miércoles: Despliegue Técnico", ev.Day.Title)
	assert.Equal(t, 3, ev.Technical)
	assert.Equal(t, 1, ev.Marketing)
	assert.Equal(t, ev.Day.TotalCount(), ev.Technical+ev.Marketing)
}

func TestSelectDay_SameKeyTwiceNotifiesTwice(t *testing.T) {
	c := newDefaultController(t)
	log := &eventLog{}
	c.Subscribe(log)

	require.NoError(t, c.SelectDay(plan.Jueves))
	require.NoError(t, c.SelectDay(plan.Jueves))

	require.Len(t, log.events, 2)
	assert.Equal(t, log.events[0], log.events[1])
}

func TestSelectDay_InvalidKeyLeavesStateUntouched(t *testing.T) {
	c := newDefaultController(t)
	require.NoError(t, c.SelectDay(plan.Martes))

	log := &eventLog{}
	c.Subscribe(log)

	err := c.SelectDay("festivo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, viewstate.ErrInvalidSelection))
	assert.True(t, errors.Is(err, plan.ErrKeyNotFound))

	assert.Equal(t, plan.Martes, c.Selected())
	assert.Equal(t, "Martes: Contenido y Comunidad", c.Current().Title)
	assert.Empty(t, log.events)
}

func TestNextPrev_Wrap(t *testing.T) {
	c := newDefaultController(t)

	require.NoError(t, c.Prev())
	assert.Equal(t, plan.Domingo, c.Selected())

	require.NoError(t, c.Next())
	assert.Equal(t, plan.Lunes, c.Selected())

	require.NoError(t, c.Next())
	assert.Equal(t, plan.Martes, c.Selected())
}

func TestNext_NotifiesLikeSelectDay(t *testing.T) {
	c := newDefaultController(t)
	log := &eventLog{}
	c.Subscribe(log)

	require.NoError(t, c.Next())

	require.Len(t, log.events, 1)
	assert.Equal(t, plan.Martes, log.events[0].Key)
	assert.Equal(t, 1, log.events[0].Technical)
	assert.Equal(t, 4, log.events[0].Marketing)
}

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	c := newDefaultController(t)

	var order []string
	unsubA := c.Subscribe(viewstate.ObserverFunc(func(viewstate.Event) { order = append(order, "a") }))
	c.Subscribe(viewstate.ObserverFunc(func(viewstate.Event) { order = append(order, "b") }))

	require.NoError(t, c.SelectDay(plan.Sabado))
	assert.Equal(t, []string{"a", "b"}, order)

	unsubA()
	unsubA()
	require.NoError(t, c.SelectDay(plan.Domingo))
	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestSubscribe_UnsubscribeDuringNotify(t *testing.T) {
	c := newDefaultController(t)

	calls := 0
	var unsub func()
	unsub = c.Subscribe(viewstate.ObserverFunc(func(viewstate.Event) {
		calls++
		unsub()
	}))
	second := &eventLog{}
	c.Subscribe(second)

	require.NoError(t, c.SelectDay(plan.Martes))
	require.NoError(t, c.SelectDay(plan.Jueves))

	assert.Equal(t, 1, calls)
	assert.Len(t, second.events, 2)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	c := newDefaultController(t)

	d := c.Current()
	d.Technical[0] = "mutated"

	assert.NotEqual(t, "mutated", c.Current().Technical[0])
}

func TestController_CustomStore(t *testing.T) {
	store := testutil.NewTestStore(t,
		testutil.NewTestDay(plan.Viernes, testutil.WithTasks(2, 0)),
		testutil.NewTestDay(plan.Sabado, testutil.WithTasks(0, 0)),
	)
	c, err := viewstate.New(store)
	require.NoError(t, err)

	assert.Equal(t, []string{plan.Viernes, plan.Sabado}, c.Keys())
	assert.Equal(t, plan.Viernes, c.Selected())

	err = c.SelectDay(plan.Lunes)
	assert.ErrorIs(t, err, viewstate.ErrInvalidSelection)

	require.NoError(t, c.Next())
	assert.Equal(t, 0, c.Current().TotalCount())
}

func TestSelectDay_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := newDefaultController(t, viewstate.WithLogger(zap.New(core)))

	require.NoError(t, c.SelectDay(plan.Viernes))
	require.Error(t, c.SelectDay("nope"))

	selected := logs.FilterMessage("day selected").All()
	require.Len(t, selected, 1)
	assert.Equal(t, plan.Viernes, selected[0].ContextMap()["key"])
	assert.Equal(t, plan.Lunes, selected[0].ContextMap()["previous"])

	assert.Equal(t, 1, logs.FilterMessage("rejected day selection").Len())
}
