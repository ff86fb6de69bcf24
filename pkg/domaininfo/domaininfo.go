package domaininfo

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/likexian/whois"
	"golang.org/x/net/publicsuffix"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// WhoisClient は、WHOISプロトコルの問い合わせ機能のインターフェースを定義します。
// Inspector は、この抽象に依存します。
type WhoisClient interface {
	Whois(query string) (string, error)
}

// likexianClient は likexian/whois を WhoisClient に適合させるためのアダプターです。
type likexianClient struct {
	client *whois.Client
}

func (c *likexianClient) Whois(query string) (string, error) {
	return c.client.Whois(query)
}

// NewWhoisClient は、デフォルトのWHOISクライアントを生成します。
func NewWhoisClient() WhoisClient {
	return &likexianClient{client: whois.NewClient()}
}

// ----------------------------------------------------------------------
// ドメイン分析
// ----------------------------------------------------------------------

// Inspector は、URLからの登録可能ドメインの抽出と、WHOIS照会を管理します。
type Inspector struct {
	whoisClient WhoisClient
}

// NewInspector は、新しいInspectorのインスタンスを生成します。
func NewInspector(whoisClient WhoisClient) (*Inspector, error) {
	if whoisClient == nil {
		return nil, fmt.Errorf("domaininfo.NewInspector: WhoisClient cannot be nil")
	}
	return &Inspector{
		whoisClient: whoisClient,
	}, nil
}

// RegistrableDomain は、URLのホスト部からスキームとサブドメインを除いた
// 登録可能ドメイン (例: news.example.com → example.com) を抽出します。
func RegistrableDomain(rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("URLのパースエラー: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		return "", fmt.Errorf("URLにホスト名が含まれていません: %s", rawURL)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(host))
	if err != nil {
		return "", fmt.Errorf("登録可能ドメインの抽出に失敗しました (host: %s): %w", host, err)
	}
	return domain, nil
}

// Inspect は、URLから登録可能ドメインを抽出し、WHOIS照会を実行します。
// 照会が成功した場合のみ、抽出済みの登録可能ドメインを返します。
//
// NOTE: WHOIS照会のクエリには、抽出したドメインではなくURL文字列全体を
// そのまま渡します。歴代の挙動を踏襲しており、意図的に「修正」していません。
func (i *Inspector) Inspect(rawURL string) (string, error) {
	domain, err := RegistrableDomain(rawURL)
	if err != nil {
		return "", err
	}

	if _, err := i.whoisClient.Whois(rawURL); err != nil {
		return "", fmt.Errorf("WHOIS照会に失敗しました (query: %s): %w", rawURL, err)
	}

	return domain, nil
}
