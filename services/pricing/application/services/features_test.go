package services_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/clock"
	"github.com/ghuser/stockroom/pkg/domainerr"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/memdb"
	"github.com/ghuser/stockroom/services/pricing/application/services"
	pricingdomain "github.com/ghuser/stockroom/services/pricing/domain"
	"github.com/ghuser/stockroom/services/pricing/infrastructure/persistence/memory"
)

const priceFeature = "../../testdata/features/price_history.feature"

type priceTestContext struct {
	store *memdb.Store
	today time.Time
	svc   *services.PriceService
	items map[string]uuid.UUID
	err   error
}

func (c *priceTestContext) reset() {
	c.store = memdb.New()
	c.items = make(map[string]uuid.UUID)
	c.err = nil
	c.today = time.Time{}
	c.svc = nil
}

func (c *priceTestContext) daysAgo(n int) time.Time {
	return c.today.AddDate(0, 0, -n)
}

func (c *priceTestContext) todayIs(date string) error {
	d, err := clock.ParseDate(date)
	if err != nil {
		return err
	}
	c.today = d
	c.svc = services.NewPriceService(memory.NewPriceRepository(c.store, nil, logger.Discard()),
		clock.Fixed(d.Add(10*time.Hour)), logger.Discard())
	return nil
}

func (c *priceTestContext) addItem(name string, active bool) error {
	id := uuid.New()
	c.items[name] = id
	return c.store.InsertItem(memdb.ItemRow{ID: id, Name: name, Category: "pieces", Weight: 1, Active: active})
}

func (c *priceTestContext) anActiveItem(name string) error   { return c.addItem(name, true) }
func (c *priceTestContext) anInactiveItem(name string) error { return c.addItem(name, false) }

func (c *priceTestContext) item(name string) (uuid.UUID, error) {
	id, ok := c.items[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("no item named %q in this scenario", name)
	}
	return id, nil
}

func (c *priceTestContext) thePriceIsSetFrom(name, price string, days int) error {
	id, err := c.item(name)
	if err != nil {
		return err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	_, c.err = c.svc.RecordPrice(context.Background(), id, p, c.daysAgo(days))
	return nil
}

func (c *priceTestContext) theChangeFailsWithKind(kind string) error {
	if c.err == nil {
		return errors.New("expected the change to fail")
	}
	if got := domainerr.KindOf(c.err); string(got) != kind {
		return fmt.Errorf("expected kind %q, got %q (%v)", kind, got, c.err)
	}
	return nil
}

func samePrice(want string, got decimal.Decimal) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !w.Equal(got) {
		return fmt.Errorf("expected price %s, got %s", w, got)
	}
	return nil
}

func (c *priceTestContext) thePriceOnDaysAgoIs(name string, days int, want string) error {
	id, err := c.item(name)
	if err != nil {
		return err
	}
	p, err := c.svc.PriceOnDate(context.Background(), id, c.daysAgo(days))
	if err != nil {
		return err
	}
	return samePrice(want, p.Price)
}

func (c *priceTestContext) thePriceOnDaysAgoIsUnset(name string, days int) error {
	id, err := c.item(name)
	if err != nil {
		return err
	}
	if _, err := c.svc.PriceOnDate(context.Background(), id, c.daysAgo(days)); !errors.Is(err, pricingdomain.ErrPriceUnset) {
		return fmt.Errorf("expected ErrPriceUnset, got %v", err)
	}
	return nil
}

func (c *priceTestContext) theCurrentPriceIs(name, want string) error {
	id, err := c.item(name)
	if err != nil {
		return err
	}
	p, err := c.svc.CurrentPrice(context.Background(), id)
	if err != nil {
		return err
	}
	return samePrice(want, p.Price)
}

func (c *priceTestContext) hasNoCurrentPrice(name string) error {
	id, err := c.item(name)
	if err != nil {
		return err
	}
	if _, err := c.svc.CurrentPrice(context.Background(), id); !errors.Is(err, pricingdomain.ErrPriceUnset) {
		return fmt.Errorf("expected ErrPriceUnset, got %v", err)
	}
	return nil
}

func (c *priceTestContext) hasIntervals(name string, n int) error {
	id, err := c.item(name)
	if err != nil {
		return err
	}
	history, err := c.svc.History(context.Background(), id)
	if err != nil {
		return err
	}
	if len(history) != n {
		return fmt.Errorf("expected %d intervals, got %d", n, len(history))
	}
	open := 0
	for _, p := range history {
		if p.IsOpen() {
			open++
		}
	}
	if n > 0 && open != 1 {
		return fmt.Errorf("expected exactly one open interval, got %d", open)
	}
	return nil
}

func InitializePriceScenario(ctx *godog.ScenarioContext) {
	tc := &priceTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^today is "([^"]*)"$`, tc.todayIs)
	ctx.Step(`^an active item "([^"]*)"$`, tc.anActiveItem)
	ctx.Step(`^an inactive item "([^"]*)"$`, tc.anInactiveItem)

	// When steps
	ctx.Step(`^the price of "([^"]*)" is set to "([^"]*)" from (-?\d+) days ago$`, tc.thePriceIsSetFrom)

	// Then steps
	ctx.Step(`^the change fails with kind "([^"]*)"$`, tc.theChangeFailsWithKind)
	ctx.Step(`^the price of "([^"]*)" (\d+) days ago is "([^"]*)"$`, tc.thePriceOnDaysAgoIs)
	ctx.Step(`^the price of "([^"]*)" (\d+) days ago is unset$`, tc.thePriceOnDaysAgoIsUnset)
	ctx.Step(`^the current price of "([^"]*)" is "([^"]*)"$`, tc.theCurrentPriceIs)
	ctx.Step(`^"([^"]*)" has no current price$`, tc.hasNoCurrentPrice)
	ctx.Step(`^"([^"]*)" has (\d+) price intervals with exactly one open$`, tc.hasIntervals)
}

func TestPriceFeatures(t *testing.T) {
	if _, err := os.Stat(priceFeature); err != nil {
		t.Skipf("feature file not found: %v", err)
	}
	suite := godog.TestSuite{
		ScenarioInitializer: InitializePriceScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{priceFeature},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
