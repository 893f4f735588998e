package frames

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/gemini-restyle-kit/pkg/imgutil"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const (
	// maxInlineBytes を超えるフレームはインライン送信前にJPEGへ再圧縮します。
	maxInlineBytes     = 4 << 20
	compressionQuality = 75
	cacheKeyFrame      = "frame:"
)

// Cacher は、解決済みフレームをキャッシュするためのインターフェースです。
type Cacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// Loader はフレーム参照を再生成要求が受け取る標準base64形式へ解決します。
// data URL、http(s) URL、gs:// URI、生の base64 文字列を受け付けます。
type Loader struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
	cache      Cacher
	expiration time.Duration
}

// NewLoader は依存関係を注入して Loader を初期化します。
func NewLoader(httpClient httpkit.ClientInterface, reader remoteio.InputReader, cache Cacher, cacheTTL time.Duration) (*Loader, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &Loader{
		httpClient: httpClient,
		reader:     reader,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// Resolve はフレーム参照を解決し、標準base64の画像データを返します。
// 取得したデータが画像でない場合や参照形式が未対応の場合はエラーを返します。
func (l *Loader) Resolve(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("frame reference is required")
	}

	if l.cache != nil {
		if val, ok := l.cache.Get(cacheKeyFrame + ref); ok {
			if encoded, ok := val.(string); ok {
				return encoded, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "ref", truncateRef(ref))
		}
	}

	data, err := l.fetchFrameData(ctx, ref)
	if err != nil {
		return "", err
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("画像ではないデータを検出しました: %s", mimeType)
	}

	// 大きすぎるフレームは再圧縮し、失敗した場合は元データのまま続行する
	if len(data) > maxInlineBytes {
		if compressed, cErr := imgutil.CompressToJPEG(data, compressionQuality); cErr == nil && len(compressed) < len(data) {
			data = compressed
		}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	if l.cache != nil {
		l.cache.Set(cacheKeyFrame+ref, encoded, l.expiration)
	}
	return encoded, nil
}

// fetchFrameData は参照形式ごとの取得処理を行います。
func (l *Loader) fetchFrameData(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		_, data, err := imgutil.ParseDataURL(ref)
		if err != nil {
			return nil, err
		}
		return data, nil

	case strings.HasPrefix(ref, "gs://"):
		rc, err := l.reader.Open(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("gs://フレームの取得に失敗しました: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)

	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		if safe, err := IsSafeURL(ref); err != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
		}
		return l.httpClient.FetchBytes(ctx, ref)

	default:
		// 表示層から base64 ペイロードがそのまま渡ってくる経路を許容する
		data, err := base64.StdEncoding.DecodeString(ref)
		if err != nil {
			return nil, fmt.Errorf("未対応のフレーム参照形式です: %s", truncateRef(ref))
		}
		return data, nil
	}
}

// truncateRef はログやエラーメッセージに長大な参照を載せないための補助です。
func truncateRef(ref string) string {
	if len(ref) > 48 {
		return ref[:48] + "..."
	}
	return ref
}
