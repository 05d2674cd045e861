package stats

// LookupTable bundles equally spaced samples of a function with the domain
// they cover: Start is the input of the first sample, Span the distance from
// the first sample to the last. Pure data plus interpolation, nothing else.
type LookupTable struct {
	Values [512]float32
	Start  float32
	Span   float32
}

// At returns the table value at x by linear interpolation between the two
// adjacent samples. Inputs outside the covered domain clamp to the end
// samples.
func (t *LookupTable) At(x float32) float32 {
	last := float32(len(t.Values) - 1)
	pos := (x - t.Start) * last / t.Span
	if pos <= 0 {
		return t.Values[0]
	}
	if pos >= last {
		return t.Values[len(t.Values)-1]
	}
	i := int(pos)
	frac := pos - float32(i)
	return t.Values[i]*(1-frac) + t.Values[i+1]*frac
}

// PDF samples the standard normal probability density at evenly spaced
// points from 0.0 to 4.0.
var PDF = LookupTable{
	Values: [512]float32{
		0.3989422804014327,
		0.3989300581391332,
		0.3988933935988851,
		0.3988322935199517,
		0.39874676913214424,
		0.3986368361523825,
		0.39850251477988063,
		0.39834382968996185,
		0.3981608100265035,
		0.39795348939301645,
		0.3977219058423624,
		0.39746610186511305,
		0.3971861243765573,
		0.39688202470236067,
		0.3965538585628836,
		0.3962016860561666,
		0.3958255716395864,
		0.39542558411019496,
		0.3950017965837461,
		0.3945542864724213,
		0.3940831354612623,
		0.3935884294833223,
		0.3930702586935447,
		0.3925287174413817,
		0.3919639042421633,
		0.39137592174723046,
		0.3907648767128433,
		0.3901308799678786,
		0.38947404638033023,
		0.38879449482262635,
		0.38809234813577786,
		0.38736773309237443,
		0.3866207803584418,
		0.3858516244541779,
		0.3850604037135844,
		0.3842472602430091,
		0.38341233987861806,
		0.3825557921428152,
		0.38167777019962623,
		0.3807784308090673,
		0.3798579342805163,
		0.37891644442510614,
		0.377954128507161,
		0.3769711571946941,
		0.3759677045089885,
		0.37494394777328155,
		0.37390006756057426,
		0.37283624764058665,
		0.3717526749258812,
		0.37064953941717693,
		0.3695270341478755,
		0.36838535512782267,
		0.367224701286328,
		0.36604527441446577,
		0.36484727910668047,
		0.36363092270172065,
		0.3623964152229252,
		0.36114396931788534,
		0.3598738001975069,
		0.35858612557449837,
		0.3572811656013071,
		0.35595914280753055,
		0.35462028203682544,
		0.353264810383342,
		0.35189295712770635,
		0.35050495367257717,
		0.3491010334778021,
		0.3476814319951985,
		0.3462463866029853,
		0.34479613653988894,
		0.3433309228389523,
		0.3418509882610688,
		0.34035657722826945,
		0.33884793575678757,
		0.3373253113899265,
		0.33578895313075613,
		0.3342391113746637,
		0.33267603784178407,
		0.33109998550933467,
		0.3295112085438813,
		0.32790996223355795,
		0.3262965029202688,
		0.3246710879318937,
		0.32303397551452523,
		0.32138542476475995,
		0.3197256955620692,
		0.3180550485012739,
		0.3163737448251472,
		0.31468204635716945,
		0.3129802154344589,
		0.31126851484090257,
		0.3095472077405091,
		0.30781655761100957,
		0.30607682817772597,
		0.30432828334773276,
		0.30257118714433284,
		0.30080580364187,
		0.2990323969009004,
		0.2972512309037446,
		0.29546256949044136,
		0.2936666762951241,
		0.29186381468284217,
		0.29005424768684485,
		0.28823823794635123,
		0.28641604764482365,
		0.28458793844876473,
		0.28275417144705794,
		0.28091500709086953,
		0.2790707051341302,
		0.2772215245746158,
		0.2753677235956436,
		0.2735095595084014,
		0.2716472886949274,
		0.26978116655175655,
		0.2679114474342497,
		0.26603838460162144,
		0.2641622301626818,
		0.2622832350223072,
		0.26040164882865413,
		0.2585177199211308,
		0.2566316952791402,
		0.2547438204716065,
		0.2528543396073,
		0.2509634952859709,
		0.24907152855030454,
		0.24717867883871014,
		0.2452851839389532,
		0.24339127994264306,
		0.24149720120058496,
		0.23960318027900687,
		0.23770944791667026,
		0.23581623298287352,
		0.23392376243635668,
		0.23203226128511475,
		0.23014195254712805,
		0.22825305721201555,
		0.22636579420361877,
		0.22448038034352158,
		0.22259703031551226,
		0.22071595663099206,
		0.2188373695953363,
		0.2169614772752113,
		0.21508848546685153,
		0.21321859766530027,
		0.2113520150346169,
		0.20948893637905314,
		0.2076295581152005,
		0.2057740742451112,
		0.20392267633039232,
		0.20207555346727554,
		0.2002328922626626,
		0.1983948768111455,
		0.1965616886730021,
		0.19473350685316576,
		0.192910507781168,
		0.19109286529205227,
		0.18928075060825697,
		0.18747433232246544,
		0.18567377638141933,
		0.18387924607069356,
		0.18209090200042746,
		0.18030890209200973,
		0.17853340156571182,
		0.17676455292926568,
		0.1750025059673803,
		0.17324740773219213,
		0.17149940253464305,
		0.1697586319367805,
		0.16802523474497263,
		0.16629934700403215,
		0.16458110199224193,
		0.1628706302172743,
		0.1611680594129971,
		0.15947351453715822,
		0.15778711776993998,
		0.15610898851337562,
		0.154439243391618,
		0.15277799625205232,
		0.15112535816724304,
		0.14948143743770526,
		0.14784633959549104,
		0.14622016740858024,
		0.14460302088606564,
		0.14299499728412188,
		0.1413961911127468,
		0.13980669414326538,
		0.1382265954165837,
		0.13665598125218248,
		0.13509493525783814,
		0.13354353834005975,
		0.13200186871522993,
		0.13047000192143737,
		0.12894801083098936,
		0.12743596566359075,
		0.12593393400017808,
		0.12444198079739531,
		0.12296016840269851,
		0.12148855657007684,
		0.12002720247637659,
		0.11857616073821506,
		0.1171354834294712,
		0.1157052200993395,
		0.114285417790934,
		0.11287612106042864,
		0.11147737199672052,
		0.11008921024160268,
		0.10871167301043234,
		0.10734479511328113,
		0.1059886089765538,
		0.10464314466506122,
		0.10330842990453411,
		0.10198449010456379,
		0.10067134838195604,
		0.09936902558448425,
		0.0980775403150281,
		0.09679690895608406,
		0.09552714569463379,
		0.09426826254735693,
		0.09302026938617428,
		0.09178317396410805,
		0.09055698194144524,
		0.08934169691219071,
		0.0881373204307967,
		0.08694385203915467,
		0.08576128929383685,
		0.08458962779357368,
		0.08342886120695409,
		0.0822789813003355,
		0.08113997796595035,
		0.08001183925019638,
		0.0788945513820977,
		0.07778809880192387,
		0.0766924641899544,
		0.07560762849537611,
		0.07453357096530094,
		0.07347026917389209,
		0.0724176990515858,
		0.07137583491439758,
		0.07034464949330013,
		0.06932411396366181,
		0.06831419797473372,
		0.0673148696791741,
		0.0663260957625987,
		0.06534784147314576,
		0.06438007065104494,
		0.0634227457581791,
		0.06247582790762827,
		0.06153927689318547,
		0.060613051218833744,
		0.05969710812817459,
		0.0587914036337974,
		0.05789589254658028,
		0.05701052850491276,
		0.05613526400383048,
		0.05527005042405302,
		0.054414838060915446,
		0.053569576153184834,
		0.05273421291175291,
		0.05190869554819628,
		0.05109297030319617,
		0.05028698247480892,
		0.04949067644657963,
		0.04870399571549143,
		0.047926882919742154,
		0.047159279866341525,
		0.04640112755852123,
		0.0456523662229513,
		0.044912935336755916,
		0.044182773654321404,
		0.04346181923389076,
		0.04275000946393813,
		0.042047281089317434,
		0.041353570237178644,
		0.04066881244264677,
		0.03999294267425798,
		0.03932589535914722,
		0.03866760440798265,
		0.03801800323964162,
		0.03737702480562407,
		0.036744601614198284,
		0.0361206657542751,
		0.03550514891900595,
		0.03489798242910156,
		0.034299097255866884,
		0.033708424043948984,
		0.033125893133794375,
		0.03255143458381279,
		0.031984978192244364,
		0.03142645351872707,
		0.03087578990556199,
		0.030332916498673985,
		0.029797762268265478,
		0.029270256029160772,
		0.028750326460839443,
		0.028237902127156742,
		0.02773291149574952,
		0.02723528295712593,
		0.026744944843437687,
		0.02626182544693405,
		0.025785853038096006,
		0.02531695588345019,
		0.024855062263061407,
		0.024400100487703875,
		0.023951998915710208,
		0.023510685969497996,
		0.02307609015177397,
		0.02264814006141581,
		0.02222676440903168,
		0.02181189203219763,
		0.02140345191037351,
		0.021001373179497945,
		0.020605585146262845,
		0.0202160173020685,
		0.019832599336659852,
		0.019455261151445417,
		0.019083932872499668,
		0.018718544863250305,
		0.018359027736851587,
		0.018005312368245565,
		0.017657329905912563,
		0.01731501178331255,
		0.016978289730019254,
		0.016647095782549085,
		0.016321362294886597,
		0.016001021948708605,
		0.015686007763309147,
		0.01537625310522766,
		0.015071691697582445,
		0.01477225762911202,
		0.014477885362926692,
		0.014188509744973016,
		0.013904066012213808,
		0.013624489800526189,
		0.01334971715232059,
		0.013079684523883521,
		0.012814328792447023,
		0.012553587262987598,
		0.012297397674757666,
		0.012045698207552783,
		0.011798427487717466,
		0.0115555245938929,
		0.011316929062509659,
		0.011082580893028776,
		0.010852420552934354,
		0.010626388982481028,
		0.010404427599199633,
		0.010186478302164537,
		0.009972483476025959,
		0.009762385994810748,
		0.009556129225495048,
		0.009353657031352429,
		0.009154913775080991,
		0.008959844321712818,
		0.008768394041309508,
		0.0085805088114473,
		0.008396135019495364,
		0.008215219564690799,
		0.008037709860013986,
		0.007863553833867946,
		0.007692699931565255,
		0.007525097116626139,
		0.0073606948718913405,
		0.0071994432004534835,
		0.007041292626410458,
		0.00688619419544446,
		0.00673409947523025,
		0.0065849605556763625,
		0.006438730049002751,
		0.0062953610896584675,
		0.006154807334082934,
		0.006017022960314446,
		0.005881962667449388,
		0.005749581674955691,
		0.005619835721844013,
		0.005492681065700254,
		0.005368074481582783,
		0.005245973260787816,
		0.005126335209486422,
		0.005009118647236573,
		0.004894282405373627,
		0.004781785825282496,
		0.004671588756554979,
		0.00456365155503548,
		0.004457935080758396,
		0.0043544006957804355,
		0.004253010261911042,
		0.004153726138344199,
		0.004056511179194654,
		0.003961328730941773,
		0.0038681426297840424,
		0.0037769171989073106,
		0.003687617245669815,
		0.0036002080587068832,
		0.0035146554049583175,
		0.0034309255266213863,
		0.003348985138032263,
		0.003268801422478729,
		0.0031903420289469513,
		0.00311357506880513,
		0.0030384691124266793,
		0.0029649931857556313,
		0.002893116766816901,
		0.002822809782174038,
		0.002754042603336996,
		0.0026867860431224197,
		0.002621011351968954,
		0.002556690214209995,
		0.002493794744306305,
		0.00243229748304078,
		0.0023721713936777347,
		0.002313389858088947,
		0.0022559266728487235,
		0.0021997560453001,
		0.0021448525895943773,
		0.0020911913227060963,
		0.0020387476604254717,
		0.001987497413330323,
		0.001937416782739479,
		0.0018884823566495828,
		0.0018406711056572096,
		0.0017939603788681162,
		0.001748327899795431,
		0.0017037517622486098,
		0.0016602104262148129,
		0.0016176827137344306,
		0.0015761478047723872,
		0.0015355852330868464,
		0.0014959748820968712,
		0.001457296980750563,
		0.0014195320993951697,
		0.0013826611456506177,
		0.0013466653602878732,
		0.0013115263131134962,
		0.0012772258988617128,
		0.001243746333095337,
		0.0012110701481167542,
		0.0011791801888902161,
		0.0011480596089766058,
		0.001117691866481844,
		0.0010880607200200465,
		0.001059150224692475,
		0.0010309447280833599,
		0.001003428866273584,
		0.0009765875598732037,
		0.0009504060100737303,
		0.0009248696947210947,
		0.00089996436441016,
		0.0008756760386016163,
		0.0008519910017620717,
		0.0008288957995281015,
		0.0008063772348950203,
		0.0007844223644310747,
		0.0007630184945177477,
		0.0007421531776168175,
		0.0007218142085648148,
		0.0007019896208954637,
		0.0006826676831906661,
		0.0006638368954605862,
		0.0006454859855533397,
		0.0006276039055947795,
		0.000610179828458829,
		0.0005932031442688042,
		0.0005766634569301406,
		0.0005605505806949011,
		0.0005448545367584255,
		0.0005295655498884626,
		0.000514674045087103,
		0.0005001706442857968,
		0.0004860461630737295,
		0.00047229160745979894,
		0.0004588981706684316,
		0.000445857229969429,
		0.00043316034354204326,
		0.00042079924737343605,
		0.00040876585219167655,
		0.0003970522404334046,
		0.00038565066324626403,
		0.00037455353752620027,
		0.00036375344298970067,
		0.00035324311928103177,
		0.00034301546311451127,
		0.00033306352545184423,
		0.0003233805087145333,
		0.00031395976403135624,
		0.0003047947885208891,
		0.00029587922260903844,
		0.00028720684738154403,
		0.0002787715819713808,
		0.0002705674809809877,
		0.00026258873193923856,
		0.00025482965279305326,
		0.00024728468943354277,
		0.00023994841325655853,
		0.00023281551875751883,
		0.00022588082116036564,
		0.0002191392540805011,
		0.00021258586722153612,
		0.00020621582410567757,
		0.00020002439983757774,
		0.00019400697890145104,
		0.00018815905299125616,
		0.00018247621887374133,
		0.00017695417628413716,
		0.0001715887258542725,
		0.00016637576707288518,
		0.00016131129627789266,
		0.00015639140468037913,
		0.00015161227642005386,
		0.00014697018665192095,
		0.00014246149966390712,
		0.00013808266702517921,
		0.00013383022576488537,
	},
	Start: 0.0,
	Span:  4.0,
}
