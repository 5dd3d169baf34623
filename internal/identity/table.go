package identity

import "eatery-blue/internal/domain"

const (
	OneZeroFourWest domain.EateryID = iota + 1
	LibeCafe
	AtriumCafe
	BearNecessities
	BeckerHouse
	BigRedBarn
	BusStopBagels
	CafeJennie
	CookHouse
	DairyBar
	CrossingsCafe
	Frannys
	GoldiesCafe
	GreenDragon
	HotDogCart
	IceCreamBike
	BetheHouse
	JansensMarket
	KeetonHouse
	MannCafe
	MarthasCafe
	MattinsCafe
	McCormicks
	NorthStarDining
	Okenshields
	Risley
	RPCC
	RoseHouse
	Rustys
	StraightFromTheMarket
	Trillium
	MorrisonDining
	NovicksCafe
	VetCafe
	MacsCafe
	Terrace
	Freedge
)

const (
	DefaultImageURL = "https://images-prod.healthline.com/hlcmsresource/images/AN_images/health-benefits-of-apples-1296x728-feature.jpg"

	imageBase = "https://raw.githubusercontent.com/cuappdev/assets/master/eatery/eatery-images/"
)

// Entry is the single source of truth for one eatery identity. Negative
// dining IDs belong to the static external-eatery dataset.
type Entry struct {
	ID        domain.EateryID
	Name      string
	DiningIDs []int
	Slugs     []string
	ImageURL  string
}

var table = []Entry{
	{ID: OneZeroFourWest, Name: "104West!", DiningIDs: []int{31}, Slugs: []string{"kosher"}, ImageURL: imageBase + "104-West.jpg"},
	{ID: LibeCafe, Name: "Amit Bhatia Libe Café", DiningIDs: []int{7}, Slugs: []string{"olinlibecafe"}, ImageURL: imageBase + "Amit-Bhatia-Libe-Cafe.jpg"},
	{ID: AtriumCafe, Name: "Atrium Café", DiningIDs: []int{8}, Slugs: []string{"sage"}, ImageURL: imageBase + "Atrium-Cafe.jpg"},
	{ID: BearNecessities, Name: "Bear Necessities Grill & C-Store", DiningIDs: []int{1}, Slugs: []string{"bearnecessities"}, ImageURL: imageBase + "Bear-Necessities.jpg"},
	{ID: BeckerHouse, Name: "Becker House Dining Room", DiningIDs: []int{25}, Slugs: []string{"carlbeckerhouse"}, ImageURL: imageBase + "Becker-House-Dining.jpg"},
	{ID: BigRedBarn, Name: "Big Red Barn", DiningIDs: []int{10}, Slugs: []string{"bigredbarn"}, ImageURL: imageBase + "Big-Red-Barn.jpg"},
	{ID: BusStopBagels, Name: "Bus Stop Bagels", DiningIDs: []int{11}, Slugs: []string{"busstopbagels"}, ImageURL: imageBase + "Bug-Stop-Bagels.jpg"},
	{ID: CafeJennie, Name: "Café Jennie", DiningIDs: []int{12}, Slugs: []string{"cafejennie"}, ImageURL: imageBase + "Cafe-Jennie.jpg"},
	{ID: CookHouse, Name: "Cook House Dining Room", DiningIDs: []int{26}, Slugs: []string{"alicecookhouse"}, ImageURL: imageBase + "Cook-House-Dining.jpg"},
	{ID: DairyBar, Name: "Cornell Dairy Bar", DiningIDs: []int{14}, Slugs: []string{"stockinghall", "stockinghallcafe"}, ImageURL: imageBase + "Cornell-Dairy-Bar.jpg"},
	{ID: CrossingsCafe, Name: "Crossings Café", DiningIDs: []int{41}, Slugs: []string{"crossingscafe"}, ImageURL: imageBase + "Crossings-Cafe.jpg"},
	{ID: Frannys, Name: "Franny's", DiningIDs: []int{32}, Slugs: []string{"frannysft"}, ImageURL: imageBase + "frannys.jpg"},
	{ID: GoldiesCafe, Name: "Goldie's Café", DiningIDs: []int{16}, Slugs: []string{"goldiescafe"}, ImageURL: imageBase + "Goldies-Cafe.jpg"},
	{ID: GreenDragon, Name: "Green Dragon", DiningIDs: []int{15}, Slugs: []string{"greendragon"}, ImageURL: imageBase + "Green-Dragon.jpg"},
	{ID: HotDogCart, Name: "Hot Dog Cart", DiningIDs: []int{24}, ImageURL: imageBase + "Hot-Dog-Cart.jpg"},
	{ID: IceCreamBike, Name: "Ice Cream Cart", DiningIDs: []int{34}, ImageURL: imageBase + "icecreamcart.jpg"},
	{ID: BetheHouse, Name: "Jansen's Dining Room at Bethe House", DiningIDs: []int{27}, Slugs: []string{"jansensatbethehouse"}, ImageURL: imageBase + "Jansens-Dining.jpg"},
	{ID: JansensMarket, Name: "Jansen's Market", DiningIDs: []int{28}, Slugs: []string{"jansensmarket"}, ImageURL: imageBase + "Jansens-Market.jpg"},
	{ID: KeetonHouse, Name: "Keeton House Dining Room", DiningIDs: []int{29}, Slugs: []string{"keetonhouse"}, ImageURL: imageBase + "Keeton-House-Dining.jpg"},
	{ID: MannCafe, Name: "Mann Café", DiningIDs: []int{42}, Slugs: []string{"manncafe"}, ImageURL: imageBase + "Mann-Cafe.jpg"},
	{ID: MarthasCafe, Name: "Martha's Café", DiningIDs: []int{18}, Slugs: []string{"marthas"}, ImageURL: imageBase + "Marthas-Cafe.jpg"},
	{ID: MattinsCafe, Name: "Mattin's Café", DiningIDs: []int{19}, Slugs: []string{"duffield"}, ImageURL: imageBase + "Mattins-Cafe.jpg"},
	{ID: McCormicks, Name: "McCormick's at Moakley House", DiningIDs: []int{33}, Slugs: []string{"mccormicks"}, ImageURL: imageBase + "mccormicks.jpg"},
	{ID: NorthStarDining, Name: "North Star Dining Room", DiningIDs: []int{3}, Slugs: []string{"northstarmarketplace"}, ImageURL: imageBase + "North-Star.jpg"},
	{ID: Okenshields, Name: "Okenshields", DiningIDs: []int{20}, Slugs: []string{"okenshields"}, ImageURL: imageBase + "Okenshields.jpg"},
	{ID: Risley, Name: "Risley Dining Room", DiningIDs: []int{4}, Slugs: []string{"risley"}, ImageURL: imageBase + "Risley-Dining.jpg"},
	{ID: RPCC, Name: "Robert Purcell Marketplace Eatery", DiningIDs: []int{5}, Slugs: []string{"rpme"}},
	{ID: RoseHouse, Name: "Rose House Dining Room", DiningIDs: []int{30}, Slugs: []string{"rosehouse"}, ImageURL: imageBase + "Rose-House-Dining.jpg"},
	{ID: Rustys, Name: "Rusty's", DiningIDs: []int{21}, Slugs: []string{"rustys"}, ImageURL: imageBase + "Rustys.jpg"},
	{ID: StraightFromTheMarket, Name: "Straight from the Market", DiningIDs: []int{13}, Slugs: []string{"straightmarket"}, ImageURL: imageBase + "StraightMarket.jpg"},
	{ID: Trillium, Name: "Trillium", DiningIDs: []int{23}, Slugs: []string{"trillium"}, ImageURL: imageBase + "Trillium.jpg"},
	{ID: MorrisonDining, Name: "Morrison Dining", DiningIDs: []int{43}, Slugs: []string{"morrisondining", "morrison"}, ImageURL: imageBase + "Morrison-Dining.jpg"},
	{ID: NovicksCafe, Name: "Novick's Café", DiningIDs: []int{44}, Slugs: []string{"novickscafe"}, ImageURL: imageBase + "novicks-cafe.jpg"},
	{ID: VetCafe, Name: "Vet College Café", DiningIDs: []int{45}, Slugs: []string{"vetcollegecafe"}, ImageURL: imageBase + "vets-cafe.jpg"},
	{ID: MacsCafe, Name: "Mac's Café", Slugs: []string{"statlermacs"}, ImageURL: imageBase + "Macs-Cafe.jpg"},
	{ID: Terrace, Name: "Terrace Restaurant", Slugs: []string{"statlerterrace"}, ImageURL: imageBase + "Terrace.jpg"},
	{ID: Freedge, Name: "Anabel's Freedge", DiningIDs: []int{-1}, Slugs: []string{"freedge"}},
}
