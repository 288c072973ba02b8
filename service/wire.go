package service

import (
	"Tripnote/pkg/router"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPasswordVerifier,
	wire.Bind(new(CredentialVerifier), new(*PasswordVerifier)),

	NewSessionStore,
	wire.Bind(new(ISessionStore), new(*SessionStore)),
	wire.Bind(new(SessionObserver), new(*SessionStore)),
	wire.Bind(new(Navigator), new(*router.Router)),

	NewRouteGuard,
	NewFollowCache,
	wire.Struct(new(UserLoader), "*"),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(SearchService), "*"),
	wire.Bind(new(ISearchService), new(*SearchService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),
)
