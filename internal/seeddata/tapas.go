package seeddata

// TapasInventoryRaw is the Tapas stock sheet as exported from the supplier
// spreadsheet: one row per item, columns separated by " | " in the order
// category, item name, brand, unit, quantity, cost, supplier, on-hand,
// availability. Blank columns stay blank.
const TapasInventoryRaw = `
APERITIF/ VERMOUTHS | Aperol 700Ml | APERITIF/ VERMOUTHS | BTL | 1 | 115000 |  | 1 | 1
APERITIF/ VERMOUTHS | Campari Bitters 1Lt | APERITIF/ VERMOUTHS | BTL | 1 | 75000 |  | 1 | 0
APERITIF/ VERMOUTHS | Martini Blanco 1Lt | APERITIF/ VERMOUTHS | BTL | 1 | 60000 |  | 1 | 0
APERITIF/ VERMOUTHS | Martini Rosso Lt | APERITIF/ VERMOUTHS | BTL | 1 | 60000 |  | 1 | 0
LOCAL BEERS | Bell Lagar 1*25BTL*500MLS | LOCAL BEERS | Crate | 1 | 66000 |  | 1 | 0
LOCAL BEERS | Castle Lite 1*20*375ML | LOCAL BEERS | Crate | 1 | 48000 |  | 3 | 0
LOCAL BEERS | Club Pilsner 1*20BTL*500MLS | LOCAL BEERS | Crate | 1 | 58500 |  | 3 | 0
LOCAL BEERS | Guiness stout 1*25*300ML | LOCAL BEERS | Crate | 1 | 71500 |  | 5 | 0
LOCAL BEERS | Guiness Smooth 1*25*300ML | LOCAL BEERS | Crate | 1 | 71500 |  | 4 | 1
LOCAL BEERS | Nile Special 1*20BTL*500MLS | LOCAL BEERS | Crate | 1 | 62500 |  | 4 | 1
LOCAL BEERS | Smirnoff Ice Black 1*25*300ML | LOCAL BEERS | Crate | 1 | 82000 |  | 2 | 0
LOCAL BEERS | Smirnoff Ice Red 1*25 BTL*300MLS | LOCAL BEERS | Crate | 1 | 82000 |  | 2 | 0
LOCAL BEERS | Tusker Lager 1*25BTL*500MLS | LOCAL BEERS | Crate | 1 | 66000 |  | 1 | 0
LOCAL BEERS | Tusker Malt 1*25*330MLS | LOCAL BEERS | Crate | 1 | 71500 |  | 3 | 0
Imported Beers | Heineken 1*24*33cl | Imported Beers | Cartons | 1 | 161000 |  | 3 | 0
Imported Beers | Hunters Dry 4*6*330ML | Imported Beers | Cartons | 1 | 168000 |  | 2 | 0
Imported Beers | Red Bull 4*6*250ML | Imported Beers | Cartons | 1 | 140000 |  | 3 | 0
Imported Beers | Savanna Premium Cider 4*6*330ML | Imported Beers | Cartons | 1 | 168000 |  | 2 | 0
GINS & SPIRITS | Beefeater 1Lt | GINS & SPIRITS | Btl | 1 | 66000 |  | 2 | 0
GINS & SPIRITS | Beefeater 750Ml | GINS & SPIRITS | Btl | 1 | 69000 |  |  | 0
GINS & SPIRITS | Befeater pink 750Ml | GINS & SPIRITS | Btl | 1 | 57000 |  | 4 | 0
GINS & SPIRITS | Bombay Sapphire1Lt | GINS & SPIRITS | Btl | 1 | 103000 |  |  | 0
GINS & SPIRITS | Gilbeys Gin 750ml | GINS & SPIRITS | Btl | 1 | 29200 |  | 8 | 4
GINS & SPIRITS | Gordon GinLondon Dry750Ml | GINS & SPIRITS | Btl | 1 | 46000 |  | 8 | 0
GINS & SPIRITS | Gordons londn Dry Gin -Pink 700Ml | GINS & SPIRITS | Btl | 1 | 50000 |  | 4 | 0
GINS & SPIRITS | Gordons London Dry Gin 1Lt | GINS & SPIRITS | Btl | 1 | 46000 |  |  | 0
GINS & SPIRITS | Hendrick's Gin 1Lt | GINS & SPIRITS | Btl | 1 | 185000 |  | 1 | 1
GINS & SPIRITS | Tanqueray Gin 1lt | GINS & SPIRITS | Btl | 1 | 84000 |  | 6 | 0
GINS & SPIRITS | Tanqueray Sevilla 700Ml | GINS & SPIRITS | Btl | 1 | 84000 |  | 10 | 0
GINS & SPIRITS | Uganda Waragi (Premium) 750ML | GINS & SPIRITS | Btl | 1 | 24000 |  | 8 | 0
Vodka | Ciroc Blue 1Lt | Vodka | Btl | 1 | 150000 |  | 3 | 0
Vodka | Grey Goose 1Lt | Vodka | Btl | 1 | 160000 |  | 1 | 0
Vodka | Stolichnaya Vodka 1Lt | Vodka | Btl | 1 | 80000 |  | 3 | 0
Vodka | Smirnoff vodka Red 750ML | Vodka | Btl | 1 | 30000 |  | 8 | 28
Vodka | Absolut Vodka citron 1Ltr | Vodka | Btl | 1 | 92000 |  | 7 | 0
Vodka | Absolut Vodka Vanilla 1Lt | Vodka | Btl | 1 | 92000 |  | 7 | 0
Vodka | Absolut Vodka Raspberry 1Lt | Vodka | Btl | 1 | 92000 |  | 7 | 0
`
