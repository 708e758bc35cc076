package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"birthday-twins/birthdays"
	"birthday-twins/lookup"
	"birthday-twins/models"
	"birthday-twins/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, date models.DateKey, opts birthdays.FetchOptions) (*birthdays.Result, error)

func (f fetchFunc) Fetch(ctx context.Context, date models.DateKey, opts birthdays.FetchOptions) (*birthdays.Result, error) {
	return f(ctx, date, opts)
}

var (
	jan1 = models.DateKey{Month: time.January, Day: 1}
	jul4 = models.DateKey{Month: time.July, Day: 4}
)

func celebs(prefix string) []models.Celebrity {
	out := make([]models.Celebrity, 0, 5)
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		out = append(out, models.Celebrity{Name: prefix + n, Description: "desc " + n})
	}
	return out
}

func staticFetcher(list []models.Celebrity) fetchFunc {
	return func(_ context.Context, date models.DateKey, _ birthdays.FetchOptions) (*birthdays.Result, error) {
		return &birthdays.Result{Date: date, Celebrities: list}, nil
	}
}

func TestController_InitialState(t *testing.T) {
	c := NewController("s1", staticFetcher(nil))
	st := c.Snapshot()

	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, models.DefaultStyle(), st.Style)
	assert.Empty(t, st.Selection)
	assert.False(t, st.CanGenerate())
}

func TestController_SelectDateLoads(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))

	st, err := c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Equal(t, jul4, st.Date)
	assert.Len(t, st.Celebrities, 5)
	assert.Equal(t, uint64(1), st.Generation)
}

func TestController_FetchFailureKeepsDate(t *testing.T) {
	boom := fmt.Errorf("%w: connection reset by peer", lookup.ErrLookupFailed)
	c := NewController("s1", fetchFunc(func(context.Context, models.DateKey, birthdays.FetchOptions) (*birthdays.Result, error) {
		return nil, boom
	}))

	st, err := c.SelectDate(context.Background(), jul4)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, "lookup failed", st.Error)
	assert.Empty(t, st.Celebrities)

	c.SetFriend(models.Friend{Name: "Sam"})
	_, err = c.Generate()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestController_StaleResultIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	c := NewController("s1", fetchFunc(func(_ context.Context, date models.DateKey, _ birthdays.FetchOptions) (*birthdays.Result, error) {
		if date == jan1 {
			close(started)
			<-release
			return &birthdays.Result{Date: date, Celebrities: celebs("old-")}, nil
		}
		return &birthdays.Result{Date: date, Celebrities: celebs("new-")}, nil
	}))

	done := make(chan error, 1)
	go func() {
		_, err := c.SelectDate(context.Background(), jan1)
		done <- err
	}()
	<-started

	st, err := c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)
	assert.Equal(t, "new-A", st.Celebrities[0].Name)

	close(release)
	assert.ErrorIs(t, <-done, ErrSuperseded)

	final := c.Snapshot()
	assert.Equal(t, jul4, final.Date)
	assert.Equal(t, StatusLoaded, final.Status)
	assert.Equal(t, "new-A", final.Celebrities[0].Name)
	assert.Equal(t, uint64(2), final.Generation)
}

func TestController_DateChangeClearsSelectionAndPost(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))
	ctx := context.Background()

	_, err := c.SelectDate(ctx, jul4)
	require.NoError(t, err)
	_, err = c.ToggleSelection("B")
	require.NoError(t, err)
	c.SetFriend(models.Friend{Name: "Sam"})
	st, err := c.Generate()
	require.NoError(t, err)
	require.NotNil(t, st.Post)

	st, err = c.SelectDate(ctx, jan1)
	require.NoError(t, err)
	assert.Empty(t, st.Selection)
	assert.Nil(t, st.Post)
	assert.Equal(t, "Sam", st.Friend.Name)
}

func TestController_RetryBypassesCache(t *testing.T) {
	var got []birthdays.FetchOptions
	c := NewController("s1", fetchFunc(func(_ context.Context, date models.DateKey, opts birthdays.FetchOptions) (*birthdays.Result, error) {
		got = append(got, opts)
		return &birthdays.Result{Date: date, Celebrities: celebs("")}, nil
	}))

	_, err := c.Retry(context.Background())
	require.ErrorIs(t, err, ErrNoDate)

	_, err = c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)
	_, err = c.Retry(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.False(t, got[0].BypassCache)
	assert.True(t, got[1].BypassCache)
}

func TestController_ToggleSelection(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))

	_, err := c.ToggleSelection("A")
	require.ErrorIs(t, err, ErrNotLoaded)

	_, err = c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)

	for _, n := range []string{"C", "A", "B", "D"} {
		_, err = c.ToggleSelection(n)
		require.NoError(t, err)
	}
	st := c.Snapshot()
	assert.Equal(t, []string{"C", "A", "B"}, st.Selection)

	st, err = c.ToggleSelection("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, st.Selection)

	_, err = c.ToggleSelection("Nobody")
	assert.ErrorIs(t, err, ErrUnknownCelebrity)
}

func TestController_GenerateUsesSelectionOrder(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))
	_, err := c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)

	_, _ = c.ToggleSelection("B")
	_, _ = c.ToggleSelection("A")
	c.SetFriend(models.Friend{Name: "  Sam "})
	c.SetStyle(models.Style{Theme: models.ThemeOcean, Font: models.FontPacifico})

	st, err := c.Generate()
	require.NoError(t, err)
	assert.Equal(t, StatusPostGenerated, st.Status)
	require.NotNil(t, st.Post)
	require.Len(t, st.Post.Celebrities, 2)
	assert.Equal(t, "B", st.Post.Celebrities[0].Name)
	assert.Equal(t, "A", st.Post.Celebrities[1].Name)
	assert.Equal(t, "Sam", st.Post.Friend.Name)
	assert.Equal(t, models.ThemeOcean, st.Post.Style.Theme)
}

func TestController_GenerateEmptyNameKeepsData(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))
	_, err := c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)
	_, _ = c.ToggleSelection("C")

	st, err := c.Generate()
	require.ErrorIs(t, err, post.ErrEmptyFriendName)
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Len(t, st.Celebrities, 5)
	assert.Equal(t, []string{"C"}, st.Selection)
	assert.Nil(t, st.Post)
}

func TestController_SnapshotsAreIndependent(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))
	_, err := c.SelectDate(context.Background(), jul4)
	require.NoError(t, err)

	before := c.Snapshot()
	_, err = c.ToggleSelection("A")
	require.NoError(t, err)

	assert.Empty(t, before.Selection)
	assert.Equal(t, []string{"A"}, c.Snapshot().Selection)
}

func TestController_GenerateChecksNameBeforeStatus(t *testing.T) {
	c := NewController("s1", staticFetcher(celebs("")))

	st, err := c.Generate()
	require.ErrorIs(t, err, post.ErrEmptyFriendName)
	assert.Equal(t, StatusIdle, st.Status)

	c.SetFriend(models.Friend{Name: "Sam"})
	_, err = c.Generate()
	assert.ErrorIs(t, err, ErrNotLoaded)
}
