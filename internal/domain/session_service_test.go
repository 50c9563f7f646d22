package domain_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arthurdotwork/atrium/internal/domain"
	"github.com/arthurdotwork/atrium/internal/domain/mocks"
	"github.com/arthurdotwork/atrium/internal/infrastructure/eventbus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCredentials = domain.Credentials{Username: "user", Password: "pass"}

func TestSessionService_Start(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("it should fail fast when the credentials are missing", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)
		feature := mocks.NewMockFeatureModule(t)

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			[]domain.FeatureModule{feature},
			domain.Options{},
		)

		err := session.Start(ctx)
		require.ErrorIs(t, err, domain.ErrBadRequest)
		require.Equal(t, domain.StateInit, session.State())
		feature.AssertNotCalled(t, "Start")
	})

	t.Run("it should abort on the first failing feature module", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		first := mocks.NewMockFeatureModule(t)
		first.On("Name").Return("contacts")
		first.On("Start", ctx, transport, gateway).Return(nil).Once()

		second := mocks.NewMockFeatureModule(t)
		second.On("Name").Return("rooms")
		second.On("Start", ctx, transport, gateway).Return(fmt.Errorf("error")).Once()

		third := mocks.NewMockFeatureModule(t)

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			[]domain.FeatureModule{first, second, third},
			domain.Options{Credentials: testCredentials},
		)

		err := session.Start(ctx)
		require.Error(t, err)
		require.Equal(t, domain.StateInit, session.State())
		third.AssertNotCalled(t, "Start")
	})

	t.Run("it should start every feature module in order", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		var order []string

		first := mocks.NewMockFeatureModule(t)
		first.On("Name").Return("contacts")
		first.On("Start", ctx, transport, gateway).Run(func(_ mock.Arguments) {
			order = append(order, "contacts")
		}).Return(nil).Once()

		second := mocks.NewMockFeatureModule(t)
		second.On("Name").Return("rooms")
		second.On("Start", ctx, transport, gateway).Run(func(_ mock.Arguments) {
			order = append(order, "rooms")
		}).Return(nil).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			[]domain.FeatureModule{first, second},
			domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))
		require.Equal(t, domain.StateStarted, session.State())
		require.Equal(t, []string{"contacts", "rooms"}, order)
	})
}

func TestSessionService_Signin(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authSession := domain.AuthSession{
		Identity: domain.Identity{UserID: "me", Address: "me@x"},
		Token:    domain.Token{Value: "t1"},
	}

	t.Run("it should end ready after authentication and re-synchronization", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		contacts := mocks.NewMockContactsDirectory(t)
		presence := mocks.NewMockPresenceAnnouncer(t)
		roomAPI := mocks.NewMockRoomAPI(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(roomAPI, transport, bus)

		gateway.On("Authenticate", ctx).Return(authSession, nil).Once()
		transport.On("Connect", ctx, authSession.Identity).Return(nil).Once()
		gateway.On("StartTokenSurvey", ctx).Return().Once()
		contacts.On("Resync", ctx).Return(nil).Once()
		roomAPI.On("GetRooms", ctx).Return([]domain.Room{}, nil).Once()
		presence.On("Announce", ctx).Return(nil).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory, contacts, presence,
			nil, domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Signin(ctx, false))
		require.Equal(t, domain.StateReady, session.State())
	})

	t.Run("it should stop at connected without a streaming channel", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		gateway.On("Authenticate", ctx).Return(authSession, nil).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			nil, domain.Options{Credentials: testCredentials, NoStream: true},
		)

		require.NoError(t, session.Signin(ctx, false))
		require.Equal(t, domain.StateConnected, session.State())
		transport.AssertNotCalled(t, "Connect")
	})

	t.Run("it should remain connecting when authentication fails", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		gateway.On("Authenticate", ctx).Return(domain.AuthSession{}, fmt.Errorf("error")).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			nil, domain.Options{Credentials: testCredentials},
		)

		require.Error(t, session.Signin(ctx, false))
		require.Equal(t, domain.StateConnecting, session.State())
	})
}

func TestSessionService_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("it should report a lost streaming connection", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			nil, domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))

		bus.Publish(ctx, domain.TransportDisconnected{})

		require.Eventually(t, func() bool {
			return session.State() == domain.StateDisconnected
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("it should report an ongoing reconnection attempt", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			nil, domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))

		bus.Publish(ctx, domain.TransportReconnectAttempt{})

		require.Eventually(t, func() bool {
			return session.State() == domain.StateReconnecting
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("it should end ready after a successful reconnection", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		contacts := mocks.NewMockContactsDirectory(t)
		presence := mocks.NewMockPresenceAnnouncer(t)
		roomAPI := mocks.NewMockRoomAPI(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(roomAPI, transport, bus)

		gateway.On("Reconnect", ctx).Return(domain.Token{Value: "t2"}, nil).Once()
		contacts.On("Resync", ctx).Return(nil).Once()
		roomAPI.On("GetRooms", ctx).Return([]domain.Room{}, nil).Once()
		presence.On("Announce", ctx).Return(nil).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory, contacts, presence,
			nil, domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))

		bus.Publish(ctx, domain.TransportReconnected{})

		require.Eventually(t, func() bool {
			return session.State() == domain.StateReady
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("it should end failed when the control channel cannot reconnect", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		gateway.On("Reconnect", ctx).Return(domain.Token{}, fmt.Errorf("error")).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			nil, domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))

		bus.Publish(ctx, domain.TransportReconnected{})

		require.Eventually(t, func() bool {
			return session.State() == domain.StateFailed
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("it should sign in again after a token expiry", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		contacts := mocks.NewMockContactsDirectory(t)
		presence := mocks.NewMockPresenceAnnouncer(t)
		roomAPI := mocks.NewMockRoomAPI(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(roomAPI, transport, bus)

		authSession := domain.AuthSession{
			Identity: domain.Identity{UserID: "me", Address: "me@x"},
			Token:    domain.Token{Value: "t1"},
		}

		var authenticated atomic.Int64
		gateway.On("Authenticate", mock.Anything).Run(func(_ mock.Arguments) {
			authenticated.Add(1)
		}).Return(authSession, nil)
		gateway.On("StartTokenSurvey", mock.Anything).Return()
		transport.On("Connect", mock.Anything, authSession.Identity).Return(nil)
		transport.On("Disconnect", mock.Anything).Return(nil).Once()
		contacts.On("Resync", mock.Anything).Return(nil)
		roomAPI.On("GetRooms", mock.Anything).Return([]domain.Room{}, nil)
		presence.On("Announce", mock.Anything).Return(nil)

		session := domain.NewSessionService(
			transport, gateway, bus, directory, contacts, presence,
			nil, domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))
		require.NoError(t, session.Signin(ctx, false))

		bus.Publish(ctx, domain.TokenExpired{})

		require.Eventually(t, func() bool {
			return authenticated.Load() == 2 && session.State() == domain.StateReady
		}, time.Second, 10*time.Millisecond)
	})
}

func TestSessionService_Stop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("it should stop the feature modules in reverse order", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		var order []string

		first := mocks.NewMockFeatureModule(t)
		first.On("Name").Return("contacts")
		first.On("Start", ctx, transport, gateway).Return(nil).Once()
		first.On("Stop", ctx).Run(func(_ mock.Arguments) {
			order = append(order, "contacts")
		}).Return(nil).Once()

		second := mocks.NewMockFeatureModule(t)
		second.On("Name").Return("rooms")
		second.On("Start", ctx, transport, gateway).Return(nil).Once()
		second.On("Stop", ctx).Run(func(_ mock.Arguments) {
			order = append(order, "rooms")
		}).Return(nil).Once()

		transport.On("Disconnect", ctx).Return(nil).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			[]domain.FeatureModule{first, second},
			domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))
		require.NoError(t, session.Stop(ctx))
		require.Equal(t, domain.StateStopped, session.State())
		require.Equal(t, []string{"rooms", "contacts"}, order)
	})

	t.Run("it should abort on the first failing stop", func(t *testing.T) {
		transport := mocks.NewMockTransportChannel(t)
		gateway := mocks.NewMockAuthGateway(t)
		bus := eventbus.New()
		defer bus.Close()

		directory := domain.NewDirectoryService(mocks.NewMockRoomAPI(t), transport, bus)

		first := mocks.NewMockFeatureModule(t)
		first.On("Name").Return("contacts")
		first.On("Start", ctx, transport, gateway).Return(nil).Once()

		second := mocks.NewMockFeatureModule(t)
		second.On("Name").Return("rooms")
		second.On("Start", ctx, transport, gateway).Return(nil).Once()
		second.On("Stop", ctx).Return(fmt.Errorf("error")).Once()

		session := domain.NewSessionService(
			transport, gateway, bus, directory,
			mocks.NewMockContactsDirectory(t), mocks.NewMockPresenceAnnouncer(t),
			[]domain.FeatureModule{first, second},
			domain.Options{Credentials: testCredentials},
		)

		require.NoError(t, session.Start(ctx))

		require.Error(t, session.Stop(ctx))
		first.AssertNotCalled(t, "Stop")
		transport.AssertNotCalled(t, "Disconnect")
	})
}
