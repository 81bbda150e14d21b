package cmd

import (
	"github.com/anishTP/echo-portal-sub004/pkg/compare"
	"github.com/anishTP/echo-portal-sub004/pkg/dlogger"
	"github.com/anishTP/echo-portal-sub004/pkg/lifecycle"
	"github.com/anishTP/echo-portal-sub004/pkg/notify"
	"github.com/anishTP/echo-portal-sub004/pkg/review"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	badgerstore "github.com/anishTP/echo-portal-sub004/pkg/store/badger"
	"github.com/anishTP/echo-portal-sub004/pkg/store/instrumented"
	"github.com/opentracing/opentracing-go"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// openStores builds the local stores under the configured directory.
// The caller owns the returned Stores and must Close them.
func openStores() (store.Stores, error) {
	dir := viper.GetString("store")
	stores := store.Stores{
		Branches: badgerstore.NewBranchStore(dir),
		Content:  badgerstore.NewContentStore(dir),
		Reviews:  badgerstore.NewReviewStore(dir),
	}
	if portalFlags.root.tracing {
		tr := opentracing.GlobalTracer()
		stores.Branches = instrumented.NewBranchStore(tr, stores.Branches)
		stores.Content = instrumented.NewContentStore(tr, stores.Content)
		stores.Reviews = instrumented.NewReviewStore(tr, stores.Reviews)
	}
	if err := stores.Initialize(); err != nil {
		return store.Stores{}, err
	}
	return stores, nil
}

func mustOpenStores() store.Stores {
	stores, err := openStores()
	if err != nil {
		wrapFatalln("initialize local stores", err)
	}
	return stores
}

func cliLogger() *zap.Logger {
	logger, err := dlogger.GetLogger(portalFlags.root.logLevel)
	if err != nil {
		wrapFatalln("set log level", err)
		return nil
	}
	return logger
}

func newLifecycleEngine(stores store.Stores) lifecycle.Engine {
	return lifecycle.NewEngine(stores.Branches, lifecycle.Logger(cliLogger()))
}

func newReviewEngine(stores store.Stores) *review.Engine {
	logger := cliLogger()
	return review.New(stores.Branches, stores.Reviews,
		lifecycle.NewEngine(stores.Branches, lifecycle.Logger(logger)),
		review.Logger(logger),
		review.Notifier(notify.NewLogNotifier(logger)),
	)
}

func newCompareEngine(stores store.Stores) *compare.Engine {
	return compare.New(stores.Branches, stores.Content,
		compare.Logger(cliLogger()),
		compare.ContextLines(portalFlags.diff.contextLines),
	)
}
