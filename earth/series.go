package earth

// Coefficients of the Earth series, SOFA epv00: amplitude, phase and
// frequency per term, ecliptic axes X, Y, Z. Only the leading terms of
// each series are carried; see DESIGN.md for the accuracy this gives.

// sun to Earth, T^0 terms
var e0 = [3][]term{
	{
		{0.9998292878132, 1.753485171504, 6.283075850446},
		{0.008352579567414, 1.710344404582, 12.56615170089},
		{0.005611445335148, 0, 0},
		{0.0001046664295572, 1.66722541677, 18.84922755134},
		{3.110842534677e-05, 0.6687513390251, 83.99684731857},
		{2.55241350355e-05, 0.5830637358413, 0.5296909721118},
		{2.137207845781e-05, 1.092330954011, 1.577343543434},
		{1.680240182951e-05, 0.4955366134987, 6.279552690824},
		{1.679012370795e-05, 6.153014091901, 6.286599010068},
		{1.445526946777e-05, 3.472744100492, 2.352866153506},
	},
	{
		{0.9998921098898, 0.1826583913846, 6.283075850446},
		{-0.02442700893735, 0, 0},
		{0.008352929742915, 0.139527799868, 12.56615170089},
		{0.0001046697300177, 0.09641423109763, 18.84922755134},
		{3.110841876663e-05, 5.381140401712, 83.99684731857},
		{2.570269094593e-05, 5.301016407128, 0.5296909721118},
		{2.14738962361e-05, 2.66251086985, 1.577343543434},
		{1.68034438405e-05, 5.207904119704, 6.279552690824},
		{1.679117312193e-05, 4.582187486968, 6.286599010068},
		{1.44051206844e-05, 1.900688517726, 2.352866153506},
	},
	{
		{2.796207639075e-06, 3.198701560209, 84.33466158131},
		{1.016042198142e-06, 5.422360395913, 5.507553240374},
		{8.044305033647e-07, 3.880222866652, 5.223693906222},
		{4.385347909274e-07, 3.704369937468, 2.352866153506},
		{3.186156414906e-07, 3.999639363235, 1.577343543434},
		{2.272412285792e-07, 3.984738315952, 1.047747311755},
		{1.645620103007e-07, 3.565412516841, 5.856477690889},
		{1.138037260402e-07, 4.829636567839, 6.062663316},
	},
}

// sun to Earth, T^1 terms
var e1 = [3][]term{
	{
		{1.234046326004e-06, 0, 0},
		{5.150068824701e-07, 6.002664300235, 12.56615170089},
		{1.290743923245e-08, 5.959437664199, 18.84922755134},
		{1.068615564952e-08, 2.015529654209, 6.283075850446},
		{2.079619142538e-09, 1.732960531432, 6.279552690824},
		{2.078009243969e-09, 4.915604476996, 6.286599010068},
		{6.206330058856e-10, 0.3616457953824, 4.705732307012},
		{5.989335313746e-10, 3.802607304474, 6.256777527156},
		{5.95849566384e-10, 2.845866560031, 6.309374173736},
		{4.866923261539e-10, 5.213203771824, 0.775522610072},
	},
	{
		{9.304690546528e-07, 0, 0},
		{5.150715570663e-07, 4.431807116294, 12.56615170089},
		{1.290825411056e-08, 4.388610039678, 18.84922755134},
		{4.645466665386e-09, 5.827263376034, 6.283075850446},
	},
	{
		{2.278290449966e-06, 3.413716033863, 6.283075850446},
		{5.42945820983e-08, 0, 0},
		{1.903240492525e-08, 3.370592358297, 12.56615170089},
	},
}

// sun to Earth, T^2 terms
var e2 = [3][]term{
	{
		{-4.143818297913e-11, 0, 0},
		{2.171497694435e-11, 4.398225628264, 12.56615170089},
		{9.845398442516e-12, 0.2079720838384, 6.283075850446},
		{9.256833552682e-13, 4.191264694361, 18.84922755134},
		{1.022049384115e-13, 5.381133195658, 83.99684731857},
	},
	{
		{5.063375872532e-11, 0, 0},
		{2.17381578598e-11, 2.827805833053, 12.56615170089},
		{1.01023199992e-11, 4.634612377133, 6.283075850446},
		{9.259745317636e-13, 2.620612076189, 18.84922755134},
		{1.022202095812e-13, 3.809562326066, 83.99684731857},
	},
	{
		{9.722666114891e-11, 5.152219582658, 6.283075850446},
		{-3.494819171909e-12, 0, 0},
		{6.713034376076e-13, 0.6440188750495, 12.56615170089},
	},
}

// solar system barycentre to Sun, T^0 terms
var s0 = [3][]term{
	{
		{0.00495675753641, 3.741073751789, 0.5296909721118},
		{0.002718490072522, 4.016011511425, 0.2132990797783},
		{0.001546493974344, 2.170528330642, 0.0381329181312},
		{0.0008366855276341, 2.339614075294, 0.0747816656905},
		{0.0002936777942117, 0, 0},
		{0.0001201317439469, 4.090736353305, 1.059381944224},
		{7.57855088723e-05, 3.24151808814, 0.4265981595566},
		{1.941787367773e-05, 1.01220206433, 0.2061856251104},
		{1.889227765991e-05, 3.89252041644, 0.2204125344462},
		{1.937896968613e-05, 4.797779441161, 0.149563331381},
		{1.434506110873e-05, 3.868960697933, 0.5225775174439},
	},
	{
		{0.004955392320126, 2.170467313679, 0.5296909721118},
		{0.002722325167392, 2.444433682196, 0.2132990797783},
		{0.001546579925346, 0.5992779281546, 0.0381329181312},
		{0.0008363140252966, 0.7687356310801, 0.0747816656905},
		{0.0003385792683603, 0, 0},
		{0.0001201192221613, 2.520035601514, 1.059381944224},
		{7.587125720554e-05, 1.669954006449, 0.4265981595566},
		{1.96415536125e-05, 5.707743963343, 0.2061856251104},
		{1.891900364909e-05, 2.320960679937, 0.2204125344462},
		{1.937373433356e-05, 3.226940689555, 0.149563331381},
		{1.437139941351e-05, 2.301626908096, 0.5225775174439},
	},
	{
		{0.0001181255122986, 0.4607918989164, 0.2132990797783},
		{0.0001127777651095, 0.4169146331296, 0.5296909721118},
		{4.777754401806e-05, 4.58265700713, 0.0381329181312},
		{1.129354285772e-05, 5.75873514248, 0.0747816656905},
		{-1.149543637123e-05, 0, 0},
		{3.298730512306e-06, 5.978801994625, 0.4265981595566},
		{2.733376706079e-06, 0.766541369104, 1.059381944224},
		{9.42638965727e-07, 3.710201265838, 0.2061856251104},
		{8.187517749552e-07, 0.3390675605802, 0.2204125344462},
		{4.080447871819e-07, 0.4552296640088, 0.5225775174439},
	},
}

// solar system barycentre to Sun, T^1 terms
var s1 = [3][]term{
	{
		{-1.29631036152e-08, 0, 0},
		{8.975769009438e-09, 1.12889160925, 0.4265981595566},
		{7.771113441307e-09, 2.706039877077, 0.2061856251104},
		{7.538303866642e-09, 2.191281289498, 0.2204125344462},
		{6.061384579336e-09, 3.248167319958, 1.059381944224},
		{5.726994235594e-09, 5.56998139861, 0.5225775174439},
	},
	{
		{8.989047573576e-09, 5.840593672122, 0.4265981595566},
		{7.815938401048e-09, 1.129664707133, 0.2061856251104},
		{7.55092671328e-09, 0.6196589104845, 0.2204125344462},
		{6.056556925895e-09, 1.677494667846, 1.059381944224},
		{5.734142698204e-09, 4.000920852962, 0.5225775174439},
	},
	{
		{3.749920358054e-08, 3.230285558668, 0.2132990797783},
		{2.563609873539e-08, 3.24593284808, 0.5296909721118},
	},
}

// solar system barycentre to Sun, T^2 terms
var s2 = [3][]term{
	{
		{1.603551636587e-12, 4.404109410481, 0.2061856251104},
		{1.556935889384e-12, 0.4818040873603, 0.4265981595566},
	},
	nil,
	nil,
}
