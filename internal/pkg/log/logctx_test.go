package log

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Тесты для logctx.go.
//
// Покрытие:
//  - From без логгера в контексте -> возвращает slog.Default();
//  - Into/From round-trip с явным *slog.Logger;
//  - устойчивость к «мусорным» значениям и *slog.Logger(nil) в контексте;
//  - «перекрытие» логгера дочерним контекстом без влияния на родительский;
//  - сохранность прочих значений контекста и отмены/дедлайна.
//
// Тесты меняют slog.Default(), поэтому намеренно НЕ используют t.Parallel().

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	got := From(context.Background())
	require.Equal(t, def, got)
}

func TestIntoAndFrom_RoundTrip(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
	require.Equal(t, def, From(context.Background()))
}

func TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	def := newSilent()
	slog.SetDefault(def)

	// Значение «не того типа» под нашим ключом.
	ctxWrong := context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctxWrong))

	// *slog.Logger == nil.
	var nilLogger *slog.Logger
	ctxNil := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctxNil))
}

func TestInto_ShadowParentLogger(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	parentL := newSilent()
	childL := newSilent()

	parent := Into(context.Background(), parentL)
	require.Equal(t, parentL, From(parent))

	child := Into(parent, childL)
	require.Equal(t, childL, From(child))

	// Родитель остался прежним.
	require.Equal(t, parentL, From(parent))
}

func TestInto_PreservesContextValues(t *testing.T) {
	type vk struct{}
	key := vk{}
	val := "v"

	base := context.WithValue(context.Background(), key, val)
	l := newSilent()

	ctx := Into(base, l)

	require.Equal(t, l, From(ctx))
	require.Equal(t, val, ctx.Value(key))
}

func TestInto_PreservesCancellationAndDeadline(t *testing.T) {
	// Дедлайн сохраняется.
	parentDL, cancelDL := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancelDL()

	l := newSilent()
	child := Into(parentDL, l)

	cdl, ok := child.Deadline()
	require.True(t, ok)
	pdl, _ := parentDL.Deadline()
	require.WithinDuration(t, pdl, cdl, time.Millisecond)

	select {
	case <-child.Done():
		require.ErrorIs(t, child.Err(), context.DeadlineExceeded)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("ожидали дедлайн у дочернего контекста")
	}

	// Отмена сохраняется.
	parentCancel, cancel := context.WithCancel(context.Background())
	child2 := Into(parentCancel, l)
	cancel()
	select {
	case <-child2.Done():
		require.ErrorIs(t, child2.Err(), context.Canceled)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("ожидали отмену у дочернего контекста")
	}
}
