// internal/catalog/generator.go
package catalog

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/javajoker/heyi-backend/internal/models"
)

var (
	titlePrefixes = []string{"创意", "数字", "未来", "幻彩", "永恒", "深度", "流光", "编码", "星辰"}
	imageColors   = []string{
		"bg-green-200", "bg-blue-200", "bg-purple-200", "bg-red-200", "bg-yellow-200",
		"bg-gray-200", "bg-indigo-200", "bg-pink-200", "bg-orange-200", "bg-cyan-200",
		"bg-teal-200", "bg-slate-200", "bg-rose-200", "bg-violet-200",
	}
	authors = []string{
		"李四", "王五", "赵六", "钱七", "孙八", "周九", "吴十", "郑十一", "NeoArtist", "InkMaster",
		"VArchitect", "ArtBot", "OceanLens", "宫商角徵羽", "MetaArchitect", "PianoMaster", "3DArtist",
		"剧本大师", "历史迷", "温情笔触", "影像工作室", "舞动人生",
	}
	collections = []string{
		"东方美学系列", "赛博朋克系列", "现代设计", "品牌资产", "元宇宙地块", "心灵音乐", "GameAssets",
		"爽文短剧", "古装悬疑", "治愈系列", "科幻音乐", "科幻影视", "现代艺术", "纪录片", "传统音乐",
		"虚拟建筑", "古典音乐", "微电影", "舞蹈艺术",
	}
	salesModeCombos = [][]models.SaleMode{
		{models.SaleModeDirect},
		{models.SaleModeLicense},
		{models.SaleModeAuction},
		{models.SaleModeLease},
		{models.SaleModeDirect, models.SaleModeLicense},
		{models.SaleModeDirect, models.SaleModeAuction},
		{models.SaleModeDirect, models.SaleModeLease},
		{models.SaleModeLicense, models.SaleModeLease},
		{models.SaleModeAuction, models.SaleModeLease},
		{models.SaleModeDirect, models.SaleModeLicense, models.SaleModeAuction},
		{models.SaleModeDirect, models.SaleModeLicense, models.SaleModeLease},
		{models.SaleModeAuction, models.SaleModeLease, models.SaleModeLicense},
		{models.SaleModeDirect, models.SaleModeAuction, models.SaleModeLease, models.SaleModeLicense},
	}
	auctionDays = []string{"1", "3", "7", "14"}
	leaseMonths = []string{"1", "3", "6", "12", "24"}

	descIntros   = []string{"这是一幅展现", "探索", "融合了", "适合", "位于", "一段舒缓的", "高精度", "一部", "考据严谨的", "温馨治愈的", "史诗级"}
	descThemes   = []string{"中国传统山水意境", "未来的霓虹都市", "现代极简主义风格", "家居装饰", "元宇宙核心商业区", "钢琴旋律", "次世代游戏", "都市逆袭", "古装悬疑", "单元剧"}
	descEndings  = []string{"数字艺术作品。", "城市景观。", "完美结合。", "海报设计。", "的黄金地块。", "背景音乐。", "角色模型。", "短剧剧本。", "探案剧本。", "系列剧本。", "电影原声。"}
	styleValues  = []string{"水墨", "赛博朋克", "极简", "抽象"}
	eraValues    = []string{"2023", "2024", "2077"}
	rarityValues = []string{"普通", "稀有", "史诗", "传奇"}
)

type generator struct {
	r *rand.Rand
}

// intn returns a uniform integer in [lo, hi].
func (g generator) intn(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Int64N(hi-lo+1)
}

func (g generator) chance(p float64) bool {
	return g.r.Float64() < p
}

func pick[T any](g generator, pool []T) T {
	return pool[g.r.IntN(len(pool))]
}

// GenerateAsset builds the synthetic asset for id. The same seed and id
// always produce the same asset.
func GenerateAsset(seed uint64, id int) models.Asset {
	g := generator{r: rand.New(rand.NewPCG(seed, uint64(id)))}

	category := pick(g, models.Categories)
	author := pick(g, authors)
	owner := author
	if !g.chance(0.5) {
		owner = pick(g, authors)
	}

	basePrice := g.intn(100, 10000)
	modes := slices.Clone(pick(g, salesModeCombos))

	a := models.Asset{
		ID:          id,
		Title:       fmt.Sprintf("%s%03d", pick(g, titlePrefixes), id),
		Collection:  pick(g, collections),
		Author:      author,
		Owner:       owner,
		Description: pick(g, descIntros) + pick(g, descThemes) + pick(g, descEndings),
		Category:    category,
		Chain:       pick(g, models.Chains),
		Price:       models.PriceFromInt(basePrice + g.intn(0, 5000)),
		Currency:    models.DefaultCurrency,
		SalesModes:  modes,
		ImageColor:  pick(g, imageColors),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%d/400/400", id),
		Likes:       g.intn(10, 1000),
		Views:       g.intn(100, 5000),
		IsListed:    g.chance(0.9),
		Properties:  g.properties(),
	}
	a.PriceHistory = g.priceHistory()
	a.IsFullCopyrightTransfer = g.chance(0.3)

	if category == models.CategoryLiterature {
		a.ScriptType = pick(g, models.ScriptTypes)
	}

	a.LicenseTypes = []models.LicenseType{}
	if a.HasSaleMode(models.SaleModeLicense) {
		n := g.intn(1, 3)
		for range n {
			lt := pick(g, models.LicenseTypes)
			if !slices.Contains(a.LicenseTypes, lt) {
				a.LicenseTypes = append(a.LicenseTypes, lt)
			}
		}
	}

	a.AuctionSettings = models.AuctionSettings{Duration: "7"}
	if a.HasSaleMode(models.SaleModeAuction) {
		a.AuctionSettings.StartPrice = models.PriceFromInt(g.intn(basePrice*8/10, basePrice))
		if g.chance(0.5) {
			reserve := models.PriceFromInt(g.intn(basePrice, basePrice*12/10))
			a.AuctionSettings.ReservePrice = &reserve
		}
		a.AuctionSettings.Duration = pick(g, auctionDays)
	}

	a.LeaseSettings = models.LeaseSettings{Duration: "1"}
	if a.HasSaleMode(models.SaleModeLease) {
		a.LeaseSettings.Price = models.PriceFromInt(g.intn(basePrice/10, basePrice*3/10))
		a.LeaseSettings.Duration = pick(g, leaseMonths)
	}

	// Full rights transfer doubles the direct-sale price.
	if a.HasSaleMode(models.SaleModeDirect) && a.IsFullCopyrightTransfer {
		a.Price = models.PriceFromInt(basePrice*2 + g.intn(0, 5000))
	}

	return a
}

// GenerateCatalog builds assets 1..n.
func GenerateCatalog(seed uint64, n int) []models.Asset {
	assets := make([]models.Asset, 0, n)
	for id := 1; id <= n; id++ {
		assets = append(assets, GenerateAsset(seed, id))
	}
	return assets
}

func (g generator) properties() []models.Property {
	var props []models.Property
	if g.chance(0.5) {
		props = append(props, models.Property{Type: "风格", Value: pick(g, styleValues)})
	}
	if g.chance(0.5) {
		props = append(props, models.Property{Type: "年代", Value: pick(g, eraValues)})
	}
	if g.chance(0.5) {
		props = append(props, models.Property{Type: "稀有度", Value: pick(g, rarityValues)})
	}
	return props
}

func (g generator) priceHistory() []models.PricePoint {
	history := make([]models.PricePoint, 0, 6)
	current := g.intn(1000, 10000)
	for month := 1; month <= 6; month++ {
		history = append(history, models.PricePoint{
			Date:  fmt.Sprintf("%d月", month),
			Price: models.PriceFromInt(current),
		})
		current += g.intn(-500, 1000)
		if current < 100 {
			current = 100
		}
	}
	return history
}
