package secadvisor

import (
	"context"
	"net/http"

	"github.com/tphakala/go-secadvisor/internal/api"
)

const notificationsServiceName = "notifications_api"

// ListChannelsOptions pages ListChannels.
type ListChannelsOptions struct {
	Limit int64 `url:"limit,omitempty"`
	Skip  int64 `url:"skip,omitempty"`
}

// NotificationService provides operations on notification channels.
//
//go:generate mockgen -destination=internal/mocks/mock_notification_service.go -package=mocks github.com/tphakala/go-secadvisor NotificationService
type NotificationService interface {
	// ListChannels returns one page of the account's channels.
	ListChannels(ctx context.Context, accountID string, list *ListChannelsOptions, opts ...RequestOption) (*ListChannelsResponse, *Response, error)

	// CreateChannel creates a notification channel.
	CreateChannel(ctx context.Context, accountID string, channel *ChannelRequest, opts ...RequestOption) (*CreateChannelResponse, *Response, error)

	// DeleteChannels removes several channels at once.
	DeleteChannels(ctx context.Context, accountID string, channelIDs []string, opts ...RequestOption) (*DeleteChannelsResponse, *Response, error)

	// GetChannel retrieves a channel.
	GetChannel(ctx context.Context, accountID, channelID string, opts ...RequestOption) (*GetChannelResponse, *Response, error)

	// UpdateChannel replaces a channel's settings.
	UpdateChannel(ctx context.Context, accountID, channelID string, channel *ChannelRequest, opts ...RequestOption) (*UpdateChannelResponse, *Response, error)

	// DeleteChannel removes a channel.
	DeleteChannel(ctx context.Context, accountID, channelID string, opts ...RequestOption) (*DeleteChannelResponse, *Response, error)

	// TestChannel sends a test notification through a channel.
	TestChannel(ctx context.Context, accountID, channelID string, opts ...RequestOption) (*TestChannelResponse, *Response, error)

	// GetPublicKey returns the key that signs notification payloads.
	GetPublicKey(ctx context.Context, accountID string, opts ...RequestOption) (*PublicKeyResponse, *Response, error)
}

// notificationService implements NotificationService.
type notificationService struct {
	transport *api.Transport
}

func newNotificationService(transport *api.Transport) *notificationService {
	return &notificationService{transport: transport}
}

// ListChannels returns one page of channels.
func (s *notificationService) ListChannels(ctx context.Context, accountID string, list *ListChannelsOptions, opts ...RequestOption) (*ListChannelsResponse, *Response, error) {
	params, err := pathParams(param{"account_id", accountID})
	if err != nil {
		return nil, nil, err
	}
	q, err := encodeQuery(list)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[ListChannelsResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/notifications/channels",
		PathParams: params,
		Query:      q,
		Headers:    reqCfg.headersFor(notificationsServiceName, "list_all_channels"),
	})
}

// CreateChannel creates a channel.
func (s *notificationService) CreateChannel(ctx context.Context, accountID string, channel *ChannelRequest, opts ...RequestOption) (*CreateChannelResponse, *Response, error) {
	params, err := pathParams(param{"account_id", accountID})
	if err != nil {
		return nil, nil, err
	}
	if err := channel.validate(); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[CreateChannelResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodPost,
		Path:       "/v1/{account_id}/notifications/channels",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "create_notification_channel"),
		Body:       channel,
	})
}

// DeleteChannels removes several channels.
func (s *notificationService) DeleteChannels(ctx context.Context, accountID string, channelIDs []string, opts ...RequestOption) (*DeleteChannelsResponse, *Response, error) {
	params, err := pathParams(param{"account_id", accountID})
	if err != nil {
		return nil, nil, err
	}
	if len(channelIDs) == 0 {
		return nil, nil, &InvalidArgumentError{Param: "channel_ids"}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[DeleteChannelsResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodDelete,
		Path:       "/v1/{account_id}/notifications/channels",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "delete_notification_channels"),
		Body:       channelIDs,
	})
}

// GetChannel retrieves a channel.
func (s *notificationService) GetChannel(ctx context.Context, accountID, channelID string, opts ...RequestOption) (*GetChannelResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"channel_id", channelID},
	)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[GetChannelResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/notifications/channels/{channel_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "get_notification_channel"),
		Resource:   api.Resource{Type: "channel", ID: channelID},
	})
}

// UpdateChannel replaces a channel's settings.
func (s *notificationService) UpdateChannel(ctx context.Context, accountID, channelID string, channel *ChannelRequest, opts ...RequestOption) (*UpdateChannelResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"channel_id", channelID},
	)
	if err != nil {
		return nil, nil, err
	}
	if err := channel.validate(); err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[UpdateChannelResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodPut,
		Path:       "/v1/{account_id}/notifications/channels/{channel_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "update_notification_channel"),
		Body:       channel,
		Resource:   api.Resource{Type: "channel", ID: channelID},
	})
}

// DeleteChannel removes a channel.
func (s *notificationService) DeleteChannel(ctx context.Context, accountID, channelID string, opts ...RequestOption) (*DeleteChannelResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"channel_id", channelID},
	)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[DeleteChannelResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodDelete,
		Path:       "/v1/{account_id}/notifications/channels/{channel_id}",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "delete_notification_channel"),
		Resource:   api.Resource{Type: "channel", ID: channelID},
	})
}

// TestChannel sends a test notification.
func (s *notificationService) TestChannel(ctx context.Context, accountID, channelID string, opts ...RequestOption) (*TestChannelResponse, *Response, error) {
	params, err := pathParams(
		param{"account_id", accountID},
		param{"channel_id", channelID},
	)
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[TestChannelResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/notifications/channels/{channel_id}/test",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "test_notification_channel"),
		Resource:   api.Resource{Type: "channel", ID: channelID},
	})
}

// GetPublicKey returns the payload signing key.
func (s *notificationService) GetPublicKey(ctx context.Context, accountID string, opts ...RequestOption) (*PublicKeyResponse, *Response, error) {
	params, err := pathParams(param{"account_id", accountID})
	if err != nil {
		return nil, nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return doJSON[PublicKeyResponse](ctx, s.transport, &api.Request{
		Method:     http.MethodGet,
		Path:       "/v1/{account_id}/notifications/public_key",
		PathParams: params,
		Headers:    reqCfg.headersFor(notificationsServiceName, "get_public_key"),
	})
}
