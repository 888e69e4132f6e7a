package recommend

type Config struct {
	// how many times spec terms count vs review terms in the TF-IDF docs
	SpecTermWeight int

	// how many ranked survivors the lexical stage hands downstream
	LexicalTopK int

	// price the market considers a fair mid-range budget
	PriceTarget     float64
	StudentPriceCap float64

	// CBF score shares
	CBFBrandWeight   float64
	CBFRatingWeight  float64
	CBFFeatureWeight float64

	// CF base score shares
	CFBrandWeight      float64
	CFRatingWeight     float64
	CFPopularityWeight float64

	// neighbours below this cosine similarity are ignored
	CFSimilarityFloor float64
	// cap on the total contribution of similar users
	CFSimilarityBonus float64
	CFDefaultRating   float64

	// popularity = rating share + review volume share
	PopularityRatingShare float64
	PopularityVolumeShare float64
	PopularitySaturation  float64
}

const (
	defaultSpecTermWeight  = 3
	defaultLexicalTopK     = 20
	defaultPriceTarget     = 8_000_000
	defaultStudentPriceCap = 10_000_000

	defaultCBFBrandWeight   = 0.4
	defaultCBFRatingWeight  = 0.2
	defaultCBFFeatureWeight = 0.4

	defaultCFBrandWeight      = 0.5
	defaultCFRatingWeight     = 0.25
	defaultCFPopularityWeight = 0.25
	defaultCFSimilarityFloor  = 0.1
	defaultCFSimilarityBonus  = 0.25
	defaultCFDefaultRating    = 4.0

	defaultPopularityRatingShare = 0.6
	defaultPopularityVolumeShare = 0.4
	defaultPopularitySaturation  = 50
)

func DefaultConfig() Config {
	return Config{
		SpecTermWeight:  defaultSpecTermWeight,
		LexicalTopK:     defaultLexicalTopK,
		PriceTarget:     defaultPriceTarget,
		StudentPriceCap: defaultStudentPriceCap,

		CBFBrandWeight:   defaultCBFBrandWeight,
		CBFRatingWeight:  defaultCBFRatingWeight,
		CBFFeatureWeight: defaultCBFFeatureWeight,

		CFBrandWeight:      defaultCFBrandWeight,
		CFRatingWeight:     defaultCFRatingWeight,
		CFPopularityWeight: defaultCFPopularityWeight,
		CFSimilarityFloor:  defaultCFSimilarityFloor,
		CFSimilarityBonus:  defaultCFSimilarityBonus,
		CFDefaultRating:    defaultCFDefaultRating,

		PopularityRatingShare: defaultPopularityRatingShare,
		PopularityVolumeShare: defaultPopularityVolumeShare,
		PopularitySaturation:  defaultPopularitySaturation,
	}
}
