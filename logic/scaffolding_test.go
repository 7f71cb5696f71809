package logic_test

import (
	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"
	"io"
	"masto_bridge/dal"
	"masto_bridge/mocks"
	"masto_bridge/shared"
	"path/filepath"
	"strings"
	"testing"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupDummyMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartGatewayRequestOut(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartPollCycle().Return(obs).AnyTimes()
	mockMetrics.EXPECT().ItemDelivered(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PollFailed(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CommandHandled(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().BridgedAccounts(gomock.Any()).AnyTimes()
}

func setupFakeTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return fakeTextWithVals(id, vals)
		}).AnyTimes()
}

func fakeTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

// A real sqlite store; the bridge's guarantees are about what ends up in it.
func setupTestRepo(t *testing.T) dal.IRepo {
	cfg := &shared.Config{DbFile: filepath.Join(t.TempDir(), "bridge.db")}
	repo := dal.NewRepo(cfg, log.New(io.Discard))
	repo.InitUpdateDb()
	return repo
}

func strStartsWith(prefix string) func(x any) bool {
	return func(x any) bool {
		str, ok := x.(string)
		return ok && strings.HasPrefix(str, prefix)
	}
}
