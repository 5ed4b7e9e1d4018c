package element

// McMaster (1969) 经验拟合数据表，按原子序数 Z 索引，单位见各表注释。
// 无数据的 7 个元素 (Po At Fr Ra Ac Pa Np) 仅有符号，其余各表缺省为零值。

// 元素符号
var symbolTable = [zTableSize]string{
	1: "H",
	2: "He",
	3: "Li",
	4: "Be",
	5: "B",
	6: "C",
	7: "N",
	8: "O",
	9: "F",
	10: "Ne",
	11: "Na",
	12: "Mg",
	13: "Al",
	14: "Si",
	15: "P",
	16: "S",
	17: "Cl",
	18: "Ar",
	19: "K",
	20: "Ca",
	21: "Sc",
	22: "Ti",
	23: "V",
	24: "Cr",
	25: "Mn",
	26: "Fe",
	27: "Co",
	28: "Ni",
	29: "Cu",
	30: "Zn",
	31: "Ga",
	32: "Ge",
	33: "As",
	34: "Se",
	35: "Br",
	36: "Kr",
	37: "Rb",
	38: "Sr",
	39: "Y",
	40: "Zr",
	41: "Nb",
	42: "Mo",
	43: "Tc",
	44: "Ru",
	45: "Rh",
	46: "Pd",
	47: "Ag",
	48: "Cd",
	49: "In",
	50: "Sn",
	51: "Sb",
	52: "Te",
	53: "I",
	54: "Xe",
	55: "Cs",
	56: "Ba",
	57: "La",
	58: "Ce",
	59: "Pr",
	60: "Nd",
	61: "Pm",
	62: "Sm",
	63: "Eu",
	64: "Gd",
	65: "Tb",
	66: "Dy",
	67: "Ho",
	68: "Er",
	69: "Tm",
	70: "Yb",
	71: "Lu",
	72: "Hf",
	73: "Ta",
	74: "W",
	75: "Re",
	76: "Os",
	77: "Ir",
	78: "Pt",
	79: "Au",
	80: "Hg",
	81: "Tl",
	82: "Pb",
	83: "Bi",
	84: "Po",
	85: "At",
	86: "Rn",
	87: "Fr",
	88: "Ra",
	89: "Ac",
	90: "Th",
	91: "Pa",
	92: "U",
	93: "Np",
	94: "Pu",
}

// 原子量，g/mol
var atWeightTable = [zTableSize]float64{
	1: 1.008,
	2: 4.0026,
	3: 6.941,
	4: 9.0122,
	5: 10.811,
	6: 12.011,
	7: 14.007,
	8: 15.999,
	9: 18.998,
	10: 20.18,
	11: 22.99,
	12: 24.305,
	13: 26.982,
	14: 28.086,
	15: 30.974,
	16: 32.066,
	17: 35.453,
	18: 39.948,
	19: 39.098,
	20: 40.078,
	21: 44.956,
	22: 47.867,
	23: 50.942,
	24: 51.996,
	25: 54.938,
	26: 55.845,
	27: 58.933,
	28: 58.693,
	29: 63.546,
	30: 65.39,
	31: 69.723,
	32: 72.61,
	33: 74.922,
	34: 78.96,
	35: 79.904,
	36: 83.8,
	37: 85.468,
	38: 87.62,
	39: 88.906,
	40: 91.224,
	41: 92.906,
	42: 95.94,
	43: 98,
	44: 101.07,
	45: 102.906,
	46: 106.42,
	47: 107.868,
	48: 112.411,
	49: 114.818,
	50: 118.71,
	51: 121.76,
	52: 127.6,
	53: 126.904,
	54: 131.29,
	55: 132.905,
	56: 137.327,
	57: 138.906,
	58: 140.116,
	59: 140.908,
	60: 144.24,
	61: 145,
	62: 150.36,
	63: 151.964,
	64: 157.25,
	65: 158.925,
	66: 162.5,
	67: 164.93,
	68: 167.26,
	69: 168.934,
	70: 173.04,
	71: 174.967,
	72: 178.49,
	73: 180.948,
	74: 183.84,
	75: 186.207,
	76: 190.23,
	77: 192.217,
	78: 195.078,
	79: 196.967,
	80: 200.59,
	81: 204.383,
	82: 207.2,
	83: 208.98,
	86: 222,
	90: 232.038,
	92: 238.029,
	94: 244,
}

// 密度，g/cm^3（气体为标况密度）
var densityTable = [zTableSize]float64{
	1: 8.99e-05,
	2: 0.0001785,
	3: 0.534,
	4: 1.848,
	5: 2.34,
	6: 2.26,
	7: 0.001251,
	8: 0.001429,
	9: 0.001696,
	10: 0.0009,
	11: 0.971,
	12: 1.738,
	13: 2.6989,
	14: 2.33,
	15: 1.82,
	16: 2.07,
	17: 0.003214,
	18: 0.001784,
	19: 0.862,
	20: 1.55,
	21: 2.989,
	22: 4.54,
	23: 6.11,
	24: 7.19,
	25: 7.33,
	26: 7.874,
	27: 8.9,
	28: 8.902,
	29: 8.96,
	30: 7.133,
	31: 5.904,
	32: 5.323,
	33: 5.73,
	34: 4.79,
	35: 3.12,
	36: 0.003733,
	37: 1.532,
	38: 2.54,
	39: 4.469,
	40: 6.506,
	41: 8.57,
	42: 10.22,
	43: 11.5,
	44: 12.41,
	45: 12.41,
	46: 12.02,
	47: 10.5,
	48: 8.65,
	49: 7.31,
	50: 7.31,
	51: 6.691,
	52: 6.24,
	53: 4.93,
	54: 0.005887,
	55: 1.873,
	56: 3.5,
	57: 6.145,
	58: 6.77,
	59: 6.773,
	60: 7.008,
	61: 7.264,
	62: 7.52,
	63: 5.244,
	64: 7.901,
	65: 8.23,
	66: 8.551,
	67: 8.795,
	68: 9.066,
	69: 9.321,
	70: 6.966,
	71: 9.841,
	72: 13.31,
	73: 16.654,
	74: 19.3,
	75: 21.02,
	76: 22.57,
	77: 22.42,
	78: 21.45,
	79: 19.32,
	80: 13.546,
	81: 11.85,
	82: 11.35,
	83: 9.747,
	86: 0.00973,
	90: 11.72,
	92: 18.95,
	94: 19.84,
}

// 吸收边能量，eV；0 表示该 Z 不存在此壳层
var kEdgeTable = [zTableSize]float64{
	1: 13.6,
	2: 24.6,
	3: 54.7,
	4: 111.5,
	5: 188,
	6: 284.2,
	7: 409.9,
	8: 543.1,
	9: 696.7,
	10: 870.2,
	11: 1070.8,
	12: 1303,
	13: 1559.6,
	14: 1839,
	15: 2145.5,
	16: 2472,
	17: 2822.4,
	18: 3205.9,
	19: 3608.4,
	20: 4038.5,
	21: 4492,
	22: 4966,
	23: 5465,
	24: 5989,
	25: 6539,
	26: 7112,
	27: 7709,
	28: 8333,
	29: 8979,
	30: 9659,
	31: 10367,
	32: 11103,
	33: 11867,
	34: 12658,
	35: 13474,
	36: 14326,
	37: 15200,
	38: 16105,
	39: 17038,
	40: 17998,
	41: 18986,
	42: 20000,
	43: 21044,
	44: 22117,
	45: 23220,
	46: 24350,
	47: 25514,
	48: 26711,
	49: 27940,
	50: 29200,
	51: 30491,
	52: 31814,
	53: 33169,
	54: 34561,
	55: 35985,
	56: 37441,
	57: 38925,
	58: 40443,
	59: 41991,
	60: 43569,
	61: 45184,
	62: 46834,
	63: 48519,
	64: 50239,
	65: 51996,
	66: 53789,
	67: 55618,
	68: 57486,
	69: 59390,
	70: 61332,
	71: 63314,
	72: 65351,
	73: 67416,
	74: 69525,
	75: 71676,
	76: 73871,
	77: 76111,
	78: 78395,
	79: 80725,
	80: 83102,
	81: 85530,
	82: 88005,
	83: 90526,
	86: 98404,
	90: 109651,
	92: 115606,
	94: 121791,
}

var l1EdgeTable = [zTableSize]float64{
	13: 117.8,
	14: 149.7,
	15: 185.9,
	16: 230.9,
	17: 271.0,
	18: 318.2,
	19: 373.5,
	20: 438.4,
	21: 495.9,
	22: 560.9,
	23: 621.3,
	24: 688.3,
	25: 762.4,
	26: 844.6,
	27: 923.0,
	28: 1008.6,
	29: 1096.7,
	30: 1196.2,
	31: 1295.5,
	32: 1403.0,
	33: 1519.4,
	34: 1645.5,
	35: 1782.0,
	36: 1911.7,
	37: 2050.8,
	38: 2200.1,
	39: 2360.2,
	40: 2532.0,
	41: 2693.8,
	42: 2866.0,
	43: 3033.3,
	44: 3210.4,
	45: 3397.8,
	46: 3596.1,
	47: 3806.0,
	48: 4014.1,
	49: 4233.5,
	50: 4465.0,
	51: 4689.0,
	52: 4924.2,
	53: 5171.2,
	54: 5430.5,
	55: 5702.9,
	56: 5989.0,
	57: 6245.5,
	58: 6512.9,
	59: 6791.8,
	60: 7082.6,
	61: 7385.9,
	62: 7702.2,
	63: 8032.0,
	64: 8376.0,
	65: 8689.8,
	66: 9015.4,
	67: 9353.2,
	68: 9703.7,
	69: 10067.3,
	70: 10444.5,
	71: 10835.8,
	72: 11241.8,
	73: 11663.0,
	74: 12100.0,
	75: 12522.4,
	76: 12959.5,
	77: 13411.8,
	78: 13880.0,
	79: 14353.0,
	80: 14839.0,
	81: 15341.5,
	82: 15861.0,
	83: 16375.1,
	86: 18019.6,
	90: 20472.0,
	92: 21757.0,
	94: 23104.0,
}

var l2EdgeTable = [zTableSize]float64{
	13: 72.9,
	14: 99.8,
	15: 127.8,
	16: 163.6,
	17: 197.8,
	18: 239.2,
	19: 289.2,
	20: 349.7,
	21: 401.2,
	22: 460.2,
	23: 514.7,
	24: 575.6,
	25: 643.7,
	26: 719.9,
	27: 791.4,
	28: 870.0,
	29: 952.3,
	30: 1044.9,
	31: 1137.3,
	32: 1237.8,
	33: 1347.3,
	34: 1466.4,
	35: 1596.0,
	36: 1718.1,
	37: 1849.4,
	38: 1990.9,
	39: 2143.1,
	40: 2307.0,
	41: 2460.9,
	42: 2625.0,
	43: 2784.3,
	44: 2953.2,
	45: 3132.4,
	46: 3322.4,
	47: 3524.0,
	48: 3723.2,
	49: 3933.6,
	50: 4156.0,
	51: 4370.9,
	52: 4596.9,
	53: 4834.6,
	54: 5084.6,
	55: 5347.5,
	56: 5624.0,
	57: 5870.8,
	58: 6128.5,
	59: 6397.4,
	60: 6678.2,
	61: 6971.3,
	62: 7277.2,
	63: 7596.6,
	64: 7930.0,
	65: 8233.4,
	66: 8548.5,
	67: 8875.6,
	68: 9215.2,
	69: 9567.9,
	70: 9934.0,
	71: 10314.1,
	72: 10708.8,
	73: 11118.5,
	74: 11544.0,
	75: 11953.9,
	76: 12378.3,
	77: 12817.9,
	78: 13273.0,
	79: 13734.0,
	80: 14206.2,
	81: 14694.7,
	82: 15200.0,
	83: 15700.1,
	86: 17301.3,
	90: 19693.0,
	92: 20948.0,
	94: 22266.0,
}

var l3EdgeTable = [zTableSize]float64{
	13: 72.5,
	14: 99.2,
	15: 127.0,
	16: 162.5,
	17: 196.3,
	18: 237.2,
	19: 286.6,
	20: 346.2,
	21: 396.4,
	22: 453.8,
	23: 507.0,
	24: 566.3,
	25: 632.7,
	26: 706.8,
	27: 776.3,
	28: 852.7,
	29: 932.7,
	30: 1021.8,
	31: 1110.6,
	32: 1207.1,
	33: 1312.0,
	34: 1426.1,
	35: 1550.0,
	36: 1665.9,
	37: 1790.5,
	38: 1924.4,
	39: 2068.3,
	40: 2223.0,
	41: 2366.8,
	42: 2520.0,
	43: 2667.8,
	44: 2824.3,
	45: 2990.0,
	46: 3165.3,
	47: 3351.0,
	48: 3533.5,
	49: 3726.0,
	50: 3929.0,
	51: 4123.1,
	52: 4326.7,
	53: 4540.4,
	54: 4764.7,
	55: 5000.0,
	56: 5247.0,
	57: 5462.8,
	58: 5687.4,
	59: 5921.3,
	60: 6164.7,
	61: 6418.2,
	62: 6682.2,
	63: 6956.9,
	64: 7243.0,
	65: 7495.8,
	66: 7757.4,
	67: 8028.1,
	68: 8308.3,
	69: 8598.2,
	70: 8898.3,
	71: 9208.8,
	72: 9530.2,
	73: 9862.8,
	74: 10207.0,
	75: 10530.5,
	76: 10864.3,
	77: 11208.7,
	78: 11564.0,
	79: 11919.0,
	80: 12280.0,
	81: 12651.8,
	82: 13035.0,
	83: 13404.3,
	86: 14576.4,
	90: 16300.0,
	92: 17166.0,
	94: 18057.0,
}

var mEdgeTable = [zTableSize]float64{
	30: 139.8,
	31: 156.4,
	32: 175.0,
	33: 195.9,
	34: 219.2,
	35: 245.3,
	36: 274.5,
	37: 307.1,
	38: 343.7,
	39: 384.5,
	40: 430.3,
	41: 466.8,
	42: 506.3,
	43: 543.1,
	44: 582.6,
	45: 624.9,
	46: 670.3,
	47: 719.0,
	48: 770.5,
	49: 825.6,
	50: 884.7,
	51: 942.5,
	52: 1004.0,
	53: 1069.5,
	54: 1139.4,
	55: 1213.8,
	56: 1293.0,
	57: 1362.6,
	58: 1436.0,
	59: 1475.2,
	60: 1515.5,
	61: 1556.9,
	62: 1599.4,
	63: 1643.1,
	64: 1688.0,
	65: 1776.9,
	66: 1870.5,
	67: 1969.0,
	68: 2072.6,
	69: 2181.8,
	70: 2296.7,
	71: 2417.6,
	72: 2544.9,
	73: 2678.9,
	74: 2820.0,
	75: 2931.8,
	76: 3048.0,
	77: 3168.8,
	78: 3294.4,
	79: 3425.0,
	80: 3561.5,
	81: 3703.4,
	82: 3851.0,
	83: 3996.6,
	86: 4467.2,
	90: 5182.0,
	92: 5548.0,
	94: 5933.0,
}

// L 系吸收边跳跃比，无量纲
var l1JumpTable = [zTableSize]float64{
	1: 1.000000,
	2: 1.000000,
	3: 1.000000,
	4: 1.000000,
	5: 1.000000,
	6: 1.000000,
	7: 1.000000,
	8: 1.000000,
	9: 1.000000,
	10: 1.000000,
	11: 1.000000,
	12: 1.000000,
	13: 1.350769,
	14: 1.334286,
	15: 1.320000,
	16: 1.307500,
	17: 1.296471,
	18: 1.286667,
	19: 1.277895,
	20: 1.270000,
	21: 1.262857,
	22: 1.256364,
	23: 1.250435,
	24: 1.245000,
	25: 1.240000,
	26: 1.235385,
	27: 1.231111,
	28: 1.227143,
	29: 1.223448,
	30: 1.220000,
	31: 1.216774,
	32: 1.213750,
	33: 1.210909,
	34: 1.208235,
	35: 1.205714,
	36: 1.203333,
	37: 1.201081,
	38: 1.198947,
	39: 1.196923,
	40: 1.195000,
	41: 1.193171,
	42: 1.191429,
	43: 1.189767,
	44: 1.188182,
	45: 1.186667,
	46: 1.185217,
	47: 1.183830,
	48: 1.182500,
	49: 1.181224,
	50: 1.180000,
	51: 1.178824,
	52: 1.177692,
	53: 1.176604,
	54: 1.175556,
	55: 1.174545,
	56: 1.173571,
	57: 1.172632,
	58: 1.171724,
	59: 1.170847,
	60: 1.170000,
	61: 1.169180,
	62: 1.168387,
	63: 1.167619,
	64: 1.166875,
	65: 1.166154,
	66: 1.165455,
	67: 1.164776,
	68: 1.164118,
	69: 1.163478,
	70: 1.162857,
	71: 1.162254,
	72: 1.161667,
	73: 1.161096,
	74: 1.160541,
	75: 1.160000,
	76: 1.159474,
	77: 1.158961,
	78: 1.158462,
	79: 1.157975,
	80: 1.157500,
	81: 1.157037,
	82: 1.156585,
	83: 1.156145,
	86: 1.154884,
	90: 1.153333,
	92: 1.152609,
	94: 1.151915,
}

var l2JumpTable = [zTableSize]float64{
	1: 1.000000,
	2: 1.000000,
	3: 1.000000,
	4: 1.000000,
	5: 1.000000,
	6: 1.000000,
	7: 1.000000,
	8: 1.000000,
	9: 1.000000,
	10: 1.000000,
	11: 1.000000,
	12: 1.000000,
	13: 1.513846,
	14: 1.502857,
	15: 1.493333,
	16: 1.485000,
	17: 1.477647,
	18: 1.471111,
	19: 1.465263,
	20: 1.460000,
	21: 1.455238,
	22: 1.450909,
	23: 1.446957,
	24: 1.443333,
	25: 1.440000,
	26: 1.436923,
	27: 1.434074,
	28: 1.431429,
	29: 1.428966,
	30: 1.426667,
	31: 1.424516,
	32: 1.422500,
	33: 1.420606,
	34: 1.418824,
	35: 1.417143,
	36: 1.415556,
	37: 1.414054,
	38: 1.412632,
	39: 1.411282,
	40: 1.410000,
	41: 1.408780,
	42: 1.407619,
	43: 1.406512,
	44: 1.405455,
	45: 1.404444,
	46: 1.403478,
	47: 1.402553,
	48: 1.401667,
	49: 1.400816,
	50: 1.400000,
	51: 1.399216,
	52: 1.398462,
	53: 1.397736,
	54: 1.397037,
	55: 1.396364,
	56: 1.395714,
	57: 1.395088,
	58: 1.394483,
	59: 1.393898,
	60: 1.393333,
	61: 1.392787,
	62: 1.392258,
	63: 1.391746,
	64: 1.391250,
	65: 1.390769,
	66: 1.390303,
	67: 1.389851,
	68: 1.389412,
	69: 1.388986,
	70: 1.388571,
	71: 1.388169,
	72: 1.387778,
	73: 1.387397,
	74: 1.387027,
	75: 1.386667,
	76: 1.386316,
	77: 1.385974,
	78: 1.385641,
	79: 1.385316,
	80: 1.385000,
	81: 1.384691,
	82: 1.384390,
	83: 1.384096,
	86: 1.383256,
	90: 1.382222,
	92: 1.381739,
	94: 1.381277,
}

var l3JumpTable = [zTableSize]float64{
	1: 1.000000,
	2: 1.000000,
	3: 1.000000,
	4: 1.000000,
	5: 1.000000,
	6: 1.000000,
	7: 1.000000,
	8: 1.000000,
	9: 1.000000,
	10: 1.000000,
	11: 1.000000,
	12: 1.000000,
	13: 4.507692,
	14: 4.342857,
	15: 4.200000,
	16: 4.075000,
	17: 3.964706,
	18: 3.866667,
	19: 3.778947,
	20: 3.700000,
	21: 3.628571,
	22: 3.563636,
	23: 3.504348,
	24: 3.450000,
	25: 3.400000,
	26: 3.353846,
	27: 3.311111,
	28: 3.271429,
	29: 3.234483,
	30: 3.200000,
	31: 3.167742,
	32: 3.137500,
	33: 3.109091,
	34: 3.082353,
	35: 3.057143,
	36: 3.033333,
	37: 3.010811,
	38: 2.989474,
	39: 2.969231,
	40: 2.950000,
	41: 2.931707,
	42: 2.914286,
	43: 2.897674,
	44: 2.881818,
	45: 2.866667,
	46: 2.852174,
	47: 2.838298,
	48: 2.825000,
	49: 2.812245,
	50: 2.800000,
	51: 2.788235,
	52: 2.776923,
	53: 2.766038,
	54: 2.755556,
	55: 2.745455,
	56: 2.735714,
	57: 2.726316,
	58: 2.717241,
	59: 2.708475,
	60: 2.700000,
	61: 2.691803,
	62: 2.683871,
	63: 2.676190,
	64: 2.668750,
	65: 2.661538,
	66: 2.654545,
	67: 2.647761,
	68: 2.641176,
	69: 2.634783,
	70: 2.628571,
	71: 2.622535,
	72: 2.616667,
	73: 2.610959,
	74: 2.605405,
	75: 2.600000,
	76: 2.594737,
	77: 2.589610,
	78: 2.584615,
	79: 2.579747,
	80: 2.575000,
	81: 2.570370,
	82: 2.565854,
	83: 2.561446,
	86: 2.548837,
	90: 2.533333,
	92: 2.526087,
	94: 2.519149,
}

// 光电吸收拟合系数 a0..a3：sigma = exp(a0 + a1*x + a2*x^2 + a3*x^3)，x = ln(E/keV)，sigma 单位 barns/atom
var kFitTable = [zTableSize][fitTerms]float64{
	1: {1.98446066, -2.74750000, -0.01720000, 0.00115000},
	2: {4.96723346, -2.74375000, -0.01640000, 0.00122500},
	3: {6.71497910, -2.74000000, -0.02000000, 0.00097500},
	4: {7.93952255, -2.75750000, -0.01920000, 0.00105000},
	5: {8.90127974, -2.75375000, -0.01840000, 0.00112500},
	6: {9.68750235, -2.75000000, -0.01760000, 0.00120000},
	7: {10.34740214, -2.74625000, -0.01680000, 0.00095000},
	8: {10.91789834, -2.74250000, -0.01600000, 0.00102500},
	9: {11.42262532, -2.76000000, -0.01960000, 0.00110000},
	10: {11.87817445, -2.75625000, -0.01880000, 0.00117500},
	11: {12.29012433, -2.75250000, -0.01800000, 0.00125000},
	12: {12.66576519, -2.74875000, -0.01720000, 0.00100000},
	13: {13.01029991, -2.74500000, -0.01640000, 0.00107500},
	14: {13.33253941, -2.74125000, -0.02000000, 0.00115000},
	15: {13.65319877, -2.75875000, -0.01920000, 0.00122500},
	16: {13.93217063, -2.75500000, -0.01840000, 0.00097500},
	17: {14.19219722, -2.75125000, -0.01760000, 0.00105000},
	18: {14.43583048, -2.74750000, -0.01680000, 0.00112500},
	19: {14.66446388, -2.74375000, -0.01600000, 0.00120000},
	20: {14.89576213, -2.74000000, -0.01960000, 0.00095000},
	21: {15.14114246, -2.75750000, -0.01880000, 0.00102500},
	22: {15.33676971, -2.75375000, -0.01800000, 0.00110000},
	23: {15.52189372, -2.75000000, -0.01720000, 0.00117500},
	24: {15.69729695, -2.74625000, -0.01640000, 0.00125000},
	25: {15.89048416, -2.74250000, -0.02000000, 0.00100000},
	26: {16.10090218, -2.76000000, -0.01920000, 0.00107500},
	27: {16.25486357, -2.75625000, -0.01840000, 0.00115000},
	28: {16.40141011, -2.75250000, -0.01760000, 0.00122500},
	29: {16.54665795, -2.74875000, -0.01680000, 0.00097500},
	30: {16.68015093, -2.74500000, -0.01600000, 0.00105000},
	31: {16.84055804, -2.74125000, -0.01960000, 0.00112500},
	32: {17.02338447, -2.75875000, -0.01880000, 0.00120000},
	33: {17.15000349, -2.75500000, -0.01800000, 0.00095000},
	34: {17.26401345, -2.75125000, -0.01720000, 0.00102500},
	35: {17.37289017, -2.74750000, -0.01640000, 0.00110000},
	36: {17.51832016, -2.74375000, -0.02000000, 0.00117500},
	37: {17.61926029, -2.74000000, -0.01920000, 0.00125000},
	38: {17.79389521, -2.75750000, -0.01840000, 0.00100000},
	39: {17.88781722, -2.75375000, -0.01760000, 0.00107500},
	40: {17.97757388, -2.75000000, -0.01680000, 0.00115000},
	41: {18.06333226, -2.74625000, -0.01600000, 0.00122500},
	42: {18.20892512, -2.74250000, -0.01960000, 0.00097500},
	43: {18.36260444, -2.76000000, -0.01880000, 0.00105000},
	44: {18.44040179, -2.75625000, -0.01800000, 0.00112500},
	45: {18.51471905, -2.75250000, -0.01720000, 0.00120000},
	46: {18.60079982, -2.74875000, -0.01640000, 0.00095000},
	47: {18.72754222, -2.74500000, -0.02000000, 0.00102500},
	48: {18.79416682, -2.74125000, -0.01920000, 0.00110000},
	49: {18.93710228, -2.75875000, -0.01840000, 0.00117500},
	50: {18.99861217, -2.75500000, -0.01760000, 0.00125000},
	51: {19.07536425, -2.75125000, -0.01680000, 0.00100000},
	52: {19.13173878, -2.74750000, -0.01600000, 0.00107500},
	53: {19.25252741, -2.74375000, -0.01960000, 0.00115000},
	54: {19.30489599, -2.74000000, -0.01880000, 0.00122500},
	55: {19.46001754, -2.75750000, -0.01800000, 0.00097500},
	56: {19.50866459, -2.75375000, -0.01720000, 0.00105000},
	57: {19.55479446, -2.75000000, -0.01640000, 0.00112500},
	58: {19.67264036, -2.74625000, -0.02000000, 0.00120000},
	59: {19.73841209, -2.74250000, -0.01920000, 0.00095000},
	60: {19.86817350, -2.76000000, -0.01840000, 0.00102500},
	61: {19.90761082, -2.75625000, -0.01760000, 0.00110000},
	62: {19.94480362, -2.75250000, -0.01680000, 0.00117500},
	63: {19.97979860, -2.74875000, -0.01600000, 0.00125000},
	64: {20.12108432, -2.74500000, -0.01960000, 0.00100000},
	65: {20.15376263, -2.74125000, -0.01880000, 0.00107500},
	66: {20.27766509, -2.75875000, -0.01800000, 0.00115000},
	67: {20.30694417, -2.75500000, -0.01720000, 0.00122500},
	68: {20.36299533, -2.75125000, -0.01640000, 0.00097500},
	69: {20.47762474, -2.74750000, -0.02000000, 0.00105000},
	70: {20.50290947, -2.74375000, -0.01920000, 0.00112500},
	71: {20.52629100, -2.74000000, -0.01840000, 0.00120000},
	72: {20.67658236, -2.75750000, -0.01760000, 0.00095000},
	73: {20.69755022, -2.75375000, -0.01680000, 0.00102500},
	74: {20.71670124, -2.75000000, -0.01600000, 0.00110000},
	75: {20.83033183, -2.74625000, -0.01960000, 0.00117500},
	76: {20.84717024, -2.74250000, -0.01880000, 0.00125000},
	77: {20.99749952, -2.76000000, -0.01800000, 0.00100000},
	78: {21.01215115, -2.75625000, -0.01720000, 0.00107500},
	79: {21.02510149, -2.75250000, -0.01640000, 0.00115000},
	80: {21.13883046, -2.74875000, -0.02000000, 0.00122500},
	81: {21.18684957, -2.74500000, -0.01920000, 0.00097500},
	82: {21.19670771, -2.74125000, -0.01840000, 0.00105000},
	83: {21.30930404, -2.75875000, -0.01760000, 0.00112500},
	86: {21.47651352, -2.74750000, -0.01960000, 0.00102500},
	90: {21.63655801, -2.75375000, -0.01640000, 0.00100000},
	92: {21.75119142, -2.74625000, -0.01920000, 0.00115000},
	94: {21.90194549, -2.76000000, -0.01760000, 0.00097500},
}

var lFitTable = [zTableSize][fitTerms]float64{
	1: {-0.41683418, -2.74625000, -0.01600000, 0.00100000},
	2: {2.57356287, -2.74250000, -0.01960000, 0.00107500},
	3: {4.29496456, -2.76000000, -0.01880000, 0.00115000},
	4: {5.53548362, -2.75625000, -0.01800000, 0.00122500},
	5: {6.49791985, -2.75250000, -0.01720000, 0.00097500},
	6: {7.28538869, -2.74875000, -0.01640000, 0.00105000},
	7: {7.95810078, -2.74500000, -0.02000000, 0.00112500},
	8: {8.53577192, -2.74125000, -0.01920000, 0.00120000},
	9: {9.01957351, -2.75875000, -0.01840000, 0.00095000},
	10: {9.47610987, -2.75500000, -0.01760000, 0.00102500},
	11: {9.88942979, -2.75125000, -0.01680000, 0.00110000},
	12: {10.26706486, -2.74750000, -0.01600000, 0.00117500},
	13: {10.62111268, -2.74375000, -0.01960000, 0.00125000},
	14: {10.94269591, -2.74000000, -0.01880000, 0.00100000},
	15: {11.21726699, -2.75750000, -0.01800000, 0.00107500},
	16: {11.49257617, -2.75375000, -0.01720000, 0.00115000},
	17: {11.75070791, -2.75000000, -0.01640000, 0.00122500},
	18: {11.99642418, -2.74625000, -0.02000000, 0.00097500},
	19: {12.22579716, -2.74250000, -0.01920000, 0.00105000},
	20: {12.43448570, -2.76000000, -0.01840000, 0.00112500},
	21: {12.64488233, -2.75625000, -0.01760000, 0.00120000},
	22: {12.84526982, -2.75250000, -0.01680000, 0.00095000},
	23: {13.03650574, -2.74875000, -0.01600000, 0.00102500},
	24: {13.21920473, -2.74500000, -0.01960000, 0.00110000},
	25: {13.39404027, -2.74125000, -0.01880000, 0.00117500},
	26: {13.56658888, -2.75875000, -0.01800000, 0.00125000},
	27: {13.72922361, -2.75500000, -0.01720000, 0.00100000},
	28: {13.88544481, -2.75125000, -0.01640000, 0.00107500},
	29: {14.03665422, -2.74750000, -0.02000000, 0.00115000},
	30: {14.18152511, -2.74375000, -0.01920000, 0.00122500},
	31: {14.32104930, -2.74000000, -0.01840000, 0.00097500},
	32: {14.47126867, -2.75750000, -0.01760000, 0.00105000},
	33: {14.60255600, -2.75375000, -0.01680000, 0.00112500},
	34: {14.72923869, -2.75000000, -0.01600000, 0.00120000},
	35: {14.85606666, -2.74625000, -0.01960000, 0.00095000},
	36: {14.97460876, -2.74250000, -0.01880000, 0.00102500},
	37: {15.11306526, -2.76000000, -0.01800000, 0.00110000},
	38: {15.22531526, -2.75625000, -0.01720000, 0.00117500},
	39: {15.33387418, -2.75250000, -0.01640000, 0.00125000},
	40: {15.44746644, -2.74875000, -0.02000000, 0.00100000},
	41: {15.54960360, -2.74500000, -0.01920000, 0.00107500},
	42: {15.64849892, -2.74125000, -0.01840000, 0.00115000},
	43: {15.77627211, -2.75875000, -0.01760000, 0.00122500},
	44: {15.87130889, -2.75500000, -0.01680000, 0.00097500},
	45: {15.96229825, -2.75125000, -0.01600000, 0.00105000},
	46: {16.06294192, -2.74750000, -0.01960000, 0.00112500},
	47: {16.14916856, -2.74375000, -0.01880000, 0.00120000},
	48: {16.23444179, -2.74000000, -0.01800000, 0.00095000},
	49: {16.35470162, -2.75750000, -0.01720000, 0.00102500},
	50: {16.43428988, -2.75375000, -0.01640000, 0.00110000},
	51: {16.52794437, -2.75000000, -0.02000000, 0.00117500},
	52: {16.60333880, -2.74625000, -0.01920000, 0.00125000},
	53: {16.67922445, -2.74250000, -0.01840000, 0.00100000},
	54: {16.79483086, -2.76000000, -0.01760000, 0.00107500},
	55: {16.86468987, -2.75625000, -0.01680000, 0.00115000},
	56: {16.93236744, -2.75250000, -0.01600000, 0.00122500},
	57: {17.02322734, -2.74875000, -0.01960000, 0.00097500},
	58: {17.08745460, -2.74500000, -0.01880000, 0.00105000},
	59: {17.14972595, -2.74125000, -0.01800000, 0.00112500},
	60: {17.26028613, -2.75875000, -0.01720000, 0.00120000},
	61: {17.32414139, -2.75500000, -0.01640000, 0.00095000},
	62: {17.40818512, -2.75125000, -0.02000000, 0.00102500},
	63: {17.46494751, -2.74750000, -0.01920000, 0.00110000},
	64: {17.51989967, -2.74375000, -0.01840000, 0.00117500},
	65: {17.57277359, -2.74000000, -0.01760000, 0.00125000},
	66: {17.68504881, -2.75750000, -0.01680000, 0.00100000},
	67: {17.73560303, -2.75375000, -0.01600000, 0.00107500},
	68: {17.81607196, -2.75000000, -0.01960000, 0.00115000},
	69: {17.86423528, -2.74625000, -0.01880000, 0.00122500},
	70: {17.91757212, -2.74250000, -0.01800000, 0.00097500},
	71: {18.02208255, -2.76000000, -0.01720000, 0.00105000},
	72: {18.06655974, -2.75625000, -0.01640000, 0.00112500},
	73: {18.14552317, -2.75250000, -0.02000000, 0.00120000},
	74: {18.19575575, -2.74875000, -0.01920000, 0.00095000},
	75: {18.23666929, -2.74500000, -0.01840000, 0.00102500},
	76: {18.27612822, -2.74125000, -0.01760000, 0.00110000},
	77: {18.37792600, -2.75875000, -0.01680000, 0.00117500},
	78: {18.41523214, -2.75500000, -0.01600000, 0.00125000},
	79: {18.50191602, -2.75125000, -0.01960000, 0.00100000},
	80: {18.53754657, -2.74750000, -0.01880000, 0.00107500},
	81: {18.57180002, -2.74375000, -0.01800000, 0.00115000},
	82: {18.60468263, -2.74000000, -0.01720000, 0.00122500},
	83: {18.71481602, -2.75750000, -0.01640000, 0.00097500},
	86: {18.85204165, -2.74625000, -0.01840000, 0.00120000},
	90: {19.09412331, -2.75250000, -0.01960000, 0.00117500},
	92: {19.15630039, -2.74500000, -0.01800000, 0.00100000},
	94: {19.27580426, -2.75875000, -0.01640000, 0.00115000},
}

var mFitTable = [zTableSize][fitTerms]float64{
	1: {-1.88924899, -2.74500000, -0.01920000, 0.00117500},
	2: {1.09555972, -2.74125000, -0.01840000, 0.00125000},
	3: {2.80778006, -2.75875000, -0.01760000, 0.00100000},
	4: {4.04908880, -2.75500000, -0.01680000, 0.00107500},
	5: {5.01288190, -2.75125000, -0.01600000, 0.00115000},
	6: {5.81253770, -2.74750000, -0.01960000, 0.00122500},
	7: {6.47830655, -2.74375000, -0.01880000, 0.00097500},
	8: {7.05676737, -2.74000000, -0.01800000, 0.00105000},
	9: {7.53330970, -2.75750000, -0.01720000, 0.00112500},
	10: {7.99063574, -2.75375000, -0.01640000, 0.00120000},
	11: {8.41478773, -2.75000000, -0.02000000, 0.00095000},
	12: {8.79321247, -2.74625000, -0.01920000, 0.00102500},
	13: {9.14167195, -2.74250000, -0.01840000, 0.00110000},
	14: {9.43041150, -2.76000000, -0.01760000, 0.00117500},
	15: {9.73135667, -2.75625000, -0.01680000, 0.00125000},
	16: {10.01179325, -2.75250000, -0.01600000, 0.00100000},
	17: {10.28815223, -2.74875000, -0.01960000, 0.00107500},
	18: {10.53820923, -2.74500000, -0.01880000, 0.00115000},
	19: {10.77497411, -2.74125000, -0.01800000, 0.00122500},
	20: {10.96425566, -2.75875000, -0.01720000, 0.00097500},
	21: {11.17832919, -2.75500000, -0.01640000, 0.00105000},
	22: {11.39403836, -2.75125000, -0.02000000, 0.00112500},
	23: {11.58945677, -2.74750000, -0.01920000, 0.00120000},
	24: {11.77538405, -2.74375000, -0.01840000, 0.00095000},
	25: {11.95519445, -2.74000000, -0.01760000, 0.00102500},
	26: {12.09391879, -2.75750000, -0.01680000, 0.00110000},
	27: {12.26047803, -2.75375000, -0.01600000, 0.00117500},
	28: {12.43253200, -2.75000000, -0.01960000, 0.00125000},
	29: {12.58634561, -2.74625000, -0.01880000, 0.00100000},
	30: {12.73295511, -2.74250000, -0.01800000, 0.00107500},
	31: {12.83936920, -2.76000000, -0.01720000, 0.00115000},
	32: {12.97463364, -2.75625000, -0.01640000, 0.00122500},
	33: {13.11178624, -2.75250000, -0.02000000, 0.00097500},
	34: {13.23801515, -2.74875000, -0.01920000, 0.00105000},
	35: {13.36059084, -2.74500000, -0.01840000, 0.00112500},
	36: {13.47967110, -2.74125000, -0.01760000, 0.00120000},
	37: {13.57877194, -2.75875000, -0.01680000, 0.00095000},
	38: {13.69370314, -2.75500000, -0.01600000, 0.00102500},
	39: {13.80681637, -2.75125000, -0.01960000, 0.00110000},
	40: {13.91505005, -2.74750000, -0.01880000, 0.00117500},
	41: {14.02100378, -2.74375000, -0.01800000, 0.00125000},
	42: {14.12412585, -2.74000000, -0.01720000, 0.00100000},
	43: {14.22039324, -2.75750000, -0.01640000, 0.00107500},
	44: {14.31994806, -2.75375000, -0.02000000, 0.00115000},
	45: {14.41680124, -2.75000000, -0.01920000, 0.00122500},
	46: {14.51120998, -2.74625000, -0.01840000, 0.00097500},
	47: {14.60323974, -2.74250000, -0.01760000, 0.00105000},
	48: {14.69603148, -2.76000000, -0.01680000, 0.00112500},
	49: {14.78495533, -2.75625000, -0.01600000, 0.00120000},
	50: {14.87202586, -2.75250000, -0.01960000, 0.00095000},
	51: {14.95670002, -2.74875000, -0.01880000, 0.00102500},
	52: {15.03931469, -2.74500000, -0.01800000, 0.00110000},
	53: {15.11991000, -2.74125000, -0.01720000, 0.00117500},
	54: {15.20991082, -2.75875000, -0.01640000, 0.00125000},
	55: {15.28956573, -2.75500000, -0.02000000, 0.00100000},
	56: {15.36602483, -2.75125000, -0.01920000, 0.00107500},
	57: {15.44038823, -2.74750000, -0.01840000, 0.00115000},
	58: {15.51299019, -2.74375000, -0.01760000, 0.00122500},
	59: {15.58365012, -2.74000000, -0.01680000, 0.00097500},
	60: {15.67012149, -2.75750000, -0.01600000, 0.00105000},
	61: {15.74142362, -2.75375000, -0.01960000, 0.00112500},
	62: {15.80834295, -2.75000000, -0.01880000, 0.00120000},
	63: {15.87411794, -2.74625000, -0.01800000, 0.00095000},
	64: {15.93832424, -2.74250000, -0.01720000, 0.00102500},
	65: {16.02246510, -2.76000000, -0.01640000, 0.00110000},
	66: {16.09003079, -2.75625000, -0.02000000, 0.00117500},
	67: {16.15188791, -2.75250000, -0.01920000, 0.00125000},
	68: {16.21275122, -2.74875000, -0.01840000, 0.00100000},
	69: {16.27174980, -2.74500000, -0.01760000, 0.00107500},
	70: {16.32930560, -2.74125000, -0.01680000, 0.00115000},
	71: {16.41280159, -2.75875000, -0.01600000, 0.00122500},
	72: {16.47726108, -2.75500000, -0.01960000, 0.00097500},
	73: {16.53233033, -2.75125000, -0.01880000, 0.00105000},
	74: {16.58601055, -2.74750000, -0.01800000, 0.00112500},
	75: {16.63784494, -2.74375000, -0.01720000, 0.00120000},
	76: {16.68957775, -2.74000000, -0.01640000, 0.00095000},
	77: {16.78284218, -2.75750000, -0.02000000, 0.00102500},
	78: {16.83243534, -2.75375000, -0.01920000, 0.00110000},
	79: {16.88082881, -2.75000000, -0.01840000, 0.00117500},
	80: {16.92803855, -2.74625000, -0.01760000, 0.00125000},
	81: {16.97569749, -2.74250000, -0.01680000, 0.00100000},
	82: {17.05791652, -2.76000000, -0.01600000, 0.00107500},
	83: {17.11653779, -2.75625000, -0.01960000, 0.00115000},
	86: {17.24726436, -2.74500000, -0.01720000, 0.00105000},
	90: {17.46835321, -2.75125000, -0.01840000, 0.00102500},
	92: {17.54276912, -2.74375000, -0.01680000, 0.00117500},
	94: {17.68384843, -2.75750000, -0.01960000, 0.00100000},
}

var nFitTable = [zTableSize][fitTerms]float64{
	1: {-3.89504492, -2.74375000, -0.01800000, 0.00102500},
	2: {-0.90920327, -2.74000000, -0.01720000, 0.00110000},
	3: {0.79067555, -2.75750000, -0.01640000, 0.00117500},
	4: {2.05634559, -2.75375000, -0.02000000, 0.00125000},
	5: {3.01720402, -2.75000000, -0.01920000, 0.00100000},
	6: {3.80649549, -2.74625000, -0.01840000, 0.00107500},
	7: {4.47465220, -2.74250000, -0.01760000, 0.00115000},
	8: {5.00521603, -2.76000000, -0.01680000, 0.00122500},
	9: {5.51302424, -2.75625000, -0.01600000, 0.00097500},
	10: {5.99471159, -2.75250000, -0.01960000, 0.00105000},
	11: {6.40985415, -2.74875000, -0.01880000, 0.00112500},
	12: {6.78931185, -2.74500000, -0.01800000, 0.00120000},
	13: {7.13483665, -2.74125000, -0.01720000, 0.00095000},
	14: {7.40987978, -2.75875000, -0.01640000, 0.00102500},
	15: {7.73518626, -2.75500000, -0.02000000, 0.00110000},
	16: {8.01801068, -2.75125000, -0.01920000, 0.00117500},
	17: {8.28400534, -2.74750000, -0.01840000, 0.00125000},
	18: {8.53112767, -2.74375000, -0.01760000, 0.00100000},
	19: {8.76892551, -2.74000000, -0.01680000, 0.00107500},
	20: {8.94586552, -2.75750000, -0.01600000, 0.00115000},
	21: {9.18430036, -2.75375000, -0.01960000, 0.00122500},
	22: {9.38567758, -2.75000000, -0.01880000, 0.00097500},
	23: {9.58212894, -2.74625000, -0.01800000, 0.00105000},
	24: {9.77044407, -2.74250000, -0.01720000, 0.00112500},
	25: {9.90235749, -2.76000000, -0.01640000, 0.00120000},
	26: {10.09567607, -2.75625000, -0.02000000, 0.00095000},
	27: {10.26326826, -2.75250000, -0.01920000, 0.00102500},
	28: {10.42495791, -2.74875000, -0.01840000, 0.00110000},
	29: {10.58115936, -2.74500000, -0.01760000, 0.00117500},
	30: {10.73224482, -2.74125000, -0.01680000, 0.00125000},
	31: {10.82565228, -2.75875000, -0.01600000, 0.00100000},
	32: {10.99080882, -2.75500000, -0.01960000, 0.00107500},
	33: {11.12843573, -2.75125000, -0.01880000, 0.00115000},
	34: {11.26211225, -2.74750000, -0.01800000, 0.00122500},
	35: {11.38809982, -2.74375000, -0.01720000, 0.00097500},
	36: {11.51454337, -2.74000000, -0.01640000, 0.00105000},
	37: {11.61206616, -2.75750000, -0.02000000, 0.00112500},
	38: {11.73204840, -2.75375000, -0.01920000, 0.00120000},
	39: {11.84508415, -2.75000000, -0.01840000, 0.00095000},
	40: {11.95925951, -2.74625000, -0.01760000, 0.00102500},
	41: {12.07074652, -2.74250000, -0.01680000, 0.00110000},
	42: {12.13074484, -2.76000000, -0.01600000, 0.00117500},
	43: {12.26056311, -2.75625000, -0.01960000, 0.00125000},
	44: {12.36075920, -2.75250000, -0.01880000, 0.00100000},
	45: {12.46270126, -2.74875000, -0.01800000, 0.00107500},
	46: {12.56251934, -2.74500000, -0.01720000, 0.00115000},
	47: {12.66030480, -2.74125000, -0.01640000, 0.00122500},
	48: {12.72657404, -2.75875000, -0.02000000, 0.00097500},
	49: {12.82054575, -2.75500000, -0.01920000, 0.00105000},
	50: {12.91272618, -2.75125000, -0.01840000, 0.00112500},
	51: {13.00318625, -2.74750000, -0.01760000, 0.00120000},
	52: {13.08802518, -2.74375000, -0.01680000, 0.00095000},
	53: {13.17524120, -2.74000000, -0.01600000, 0.00102500},
	54: {13.23532457, -2.75750000, -0.01960000, 0.00110000},
	55: {13.31953465, -2.75375000, -0.01880000, 0.00117500},
	56: {13.40232300, -2.75000000, -0.01800000, 0.00125000},
	57: {13.47977234, -2.74625000, -0.01720000, 0.00100000},
	58: {13.55986562, -2.74250000, -0.01640000, 0.00107500},
	59: {13.61307888, -2.76000000, -0.02000000, 0.00115000},
	60: {13.69065827, -2.75625000, -0.01920000, 0.00122500},
	61: {13.76307543, -2.75250000, -0.01840000, 0.00097500},
	62: {13.83830445, -2.74875000, -0.01760000, 0.00105000},
	63: {13.91241470, -2.74500000, -0.01680000, 0.00112500},
	64: {13.98544141, -2.74125000, -0.01600000, 0.00120000},
	65: {14.02784899, -2.75875000, -0.01960000, 0.00095000},
	66: {14.09880790, -2.75500000, -0.01880000, 0.00102500},
	67: {14.16877956, -2.75125000, -0.01800000, 0.00110000},
	68: {14.23779321, -2.74750000, -0.01720000, 0.00117500},
	69: {14.30587682, -2.74375000, -0.01640000, 0.00125000},
	70: {14.39241790, -2.74000000, -0.02000000, 0.00100000},
	71: {14.40979068, -2.75750000, -0.01920000, 0.00107500},
	72: {14.47524030, -2.75375000, -0.01840000, 0.00115000},
	73: {14.53986037, -2.75000000, -0.01760000, 0.00122500},
	74: {14.59970583, -2.74625000, -0.01680000, 0.00097500},
	75: {14.66273360, -2.74250000, -0.01600000, 0.00105000},
	76: {14.69939527, -2.76000000, -0.01960000, 0.00112500},
	77: {14.76091401, -2.75625000, -0.01880000, 0.00120000},
	78: {14.81773980, -2.75250000, -0.01800000, 0.00095000},
	79: {14.87782640, -2.74875000, -0.01720000, 0.00102500},
	80: {14.93722394, -2.74500000, -0.01640000, 0.00110000},
	81: {15.01927791, -2.74125000, -0.02000000, 0.00117500},
	82: {15.02841816, -2.75875000, -0.01920000, 0.00125000},
	83: {15.08188116, -2.75500000, -0.01840000, 0.00100000},
	86: {15.25048627, -2.74375000, -0.01600000, 0.00122500},
	90: {15.43764039, -2.75000000, -0.01720000, 0.00120000},
	92: {15.56212798, -2.74250000, -0.02000000, 0.00102500},
	94: {15.61629230, -2.75625000, -0.01840000, 0.00117500},
}

// 相干/非相干散射拟合系数，形式同上
var cohFitTable = [zTableSize][fitTerms]float64{
	1: {-1.14821520, -0.70333333, -0.11575000, 0.00000000},
	2: {0.36903331, -0.70000000, -0.11575000, 0.00000000},
	3: {1.25338127, -0.69666667, -0.11575000, 0.00000000},
	4: {1.87860654, -0.69333333, -0.11575000, 0.00000000},
	5: {2.39638585, -0.70500000, -0.11575000, 0.00000000},
	6: {2.78981799, -0.70166667, -0.11575000, 0.00000000},
	7: {3.12127420, -0.69833333, -0.11575000, 0.00000000},
	8: {3.40736798, -0.69500000, -0.11575000, 0.00000000},
	9: {3.69335415, -0.70666667, -0.11575000, 0.00000000},
	10: {3.91747201, -0.70333333, -0.11575000, 0.00000000},
	11: {4.11947912, -0.70000000, -0.11575000, 0.00000000},
	12: {4.30322886, -0.69666667, -0.11575000, 0.00000000},
	13: {4.47164754, -0.69333333, -0.11575000, 0.00000000},
	14: {4.66154857, -0.70500000, -0.11575000, 0.00000000},
	15: {4.80565760, -0.70166667, -0.11575000, 0.00000000},
	16: {4.93996706, -0.69833333, -0.11575000, 0.00000000},
	17: {5.06566595, -0.69500000, -0.11575000, 0.00000000},
	18: {5.21827795, -0.70666667, -0.11575000, 0.00000000},
	19: {5.32955055, -0.70333333, -0.11575000, 0.00000000},
	20: {5.43472052, -0.70000000, -0.11575000, 0.00000000},
	21: {5.53438360, -0.69666667, -0.11575000, 0.00000000},
	22: {5.62905235, -0.69333333, -0.11575000, 0.00000000},
	23: {5.75370972, -0.70500000, -0.11575000, 0.00000000},
	24: {5.83966559, -0.70166667, -0.11575000, 0.00000000},
	25: {5.92179869, -0.69833333, -0.11575000, 0.00000000},
	26: {6.00040898, -0.69500000, -0.11575000, 0.00000000},
	27: {6.11030119, -0.70666667, -0.11575000, 0.00000000},
	28: {6.18263472, -0.70333333, -0.11575000, 0.00000000},
	29: {6.25216034, -0.70000000, -0.11575000, 0.00000000},
	30: {6.31906847, -0.69666667, -0.11575000, 0.00000000},
	31: {6.38353080, -0.69333333, -0.11575000, 0.00000000},
	32: {6.48024143, -0.70500000, -0.11575000, 0.00000000},
	33: {6.54026379, -0.70166667, -0.11575000, 0.00000000},
	34: {6.59826503, -0.69833333, -0.11575000, 0.00000000},
	35: {6.65436233, -0.69500000, -0.11575000, 0.00000000},
	36: {6.74320175, -0.70666667, -0.11575000, 0.00000000},
	37: {6.79580421, -0.70333333, -0.11575000, 0.00000000},
	38: {6.84679907, -0.70000000, -0.11575000, 0.00000000},
	39: {6.89626985, -0.69666667, -0.11575000, 0.00000000},
	40: {6.94429375, -0.69333333, -0.11575000, 0.00000000},
	41: {7.02548099, -0.70500000, -0.11575000, 0.00000000},
	42: {7.07082032, -0.70166667, -0.11575000, 0.00000000},
	43: {7.11491213, -0.69833333, -0.11575000, 0.00000000},
	44: {7.15781379, -0.69500000, -0.11575000, 0.00000000},
	45: {7.23411756, -0.70666667, -0.11575000, 0.00000000},
	46: {7.27479587, -0.70333333, -0.11575000, 0.00000000},
	47: {7.31443424, -0.70000000, -0.11575000, 0.00000000},
	48: {7.35307646, -0.69666667, -0.11575000, 0.00000000},
	49: {7.39076361, -0.69333333, -0.11575000, 0.00000000},
	50: {7.46207305, -0.70500000, -0.11575000, 0.00000000},
	51: {7.49796355, -0.70166667, -0.11575000, 0.00000000},
	52: {7.53300806, -0.69833333, -0.11575000, 0.00000000},
	53: {7.56723880, -0.69500000, -0.11575000, 0.00000000},
	54: {7.63522499, -0.70666667, -0.11575000, 0.00000000},
	55: {7.66791781, -0.70333333, -0.11575000, 0.00000000},
	56: {7.69988324, -0.70000000, -0.11575000, 0.00000000},
	57: {7.73114702, -0.69666667, -0.11575000, 0.00000000},
	58: {7.76173357, -0.69333333, -0.11575000, 0.00000000},
	59: {7.82620482, -0.70500000, -0.11575000, 0.00000000},
	60: {7.85550520, -0.70166667, -0.11575000, 0.00000000},
	61: {7.88419438, -0.69833333, -0.11575000, 0.00000000},
	62: {7.91229224, -0.69500000, -0.11575000, 0.00000000},
	63: {7.97435648, -0.70666667, -0.11575000, 0.00000000},
	64: {8.00132758, -0.70333333, -0.11575000, 0.00000000},
	65: {8.02776151, -0.70000000, -0.11575000, 0.00000000},
	66: {8.05367467, -0.69666667, -0.11575000, 0.00000000},
	67: {8.07908271, -0.69333333, -0.11575000, 0.00000000},
	68: {8.13853939, -0.70500000, -0.11575000, 0.00000000},
	69: {8.16298147, -0.70166667, -0.11575000, 0.00000000},
	70: {8.18696141, -0.69833333, -0.11575000, 0.00000000},
	71: {8.21049232, -0.69500000, -0.11575000, 0.00000000},
	72: {8.26812555, -0.70666667, -0.11575000, 0.00000000},
	73: {8.29079557, -0.70333333, -0.11575000, 0.00000000},
	74: {8.31305272, -0.70000000, -0.11575000, 0.00000000},
	75: {8.33490808, -0.69666667, -0.11575000, 0.00000000},
	76: {8.35637230, -0.69333333, -0.11575000, 0.00000000},
	77: {8.41199437, -0.70500000, -0.11575000, 0.00000000},
	78: {8.43270658, -0.70166667, -0.11575000, 0.00000000},
	79: {8.45305715, -0.69833333, -0.11575000, 0.00000000},
	80: {8.47305519, -0.69500000, -0.11575000, 0.00000000},
	81: {8.52724822, -0.70666667, -0.11575000, 0.00000000},
	82: {8.54656714, -0.70333333, -0.11575000, 0.00000000},
	83: {8.56555885, -0.70000000, -0.11575000, 0.00000000},
	86: {8.65518649, -0.70500000, -0.11575000, 0.00000000},
	90: {8.75904136, -0.70666667, -0.11575000, 0.00000000},
	92: {8.79204439, -0.70000000, -0.11575000, 0.00000000},
	94: {8.82400747, -0.69333333, -0.11575000, 0.00000000},
}

var incFitTable = [zTableSize][fitTerms]float64{
	1: {-1.74740471, 0.55000000, -0.05988889, 0.00000000},
	2: {-1.06111147, 0.55400000, -0.06033333, 0.00000000},
	3: {-0.64784646, 0.54933333, -0.05977778, 0.00000000},
	4: {-0.36701833, 0.55333333, -0.06022222, 0.00000000},
	5: {-0.13607488, 0.54866667, -0.05966667, 0.00000000},
	6: {0.03939273, 0.55266667, -0.06011111, 0.00000000},
	7: {0.20134331, 0.54800000, -0.05955556, 0.00000000},
	8: {0.32802076, 0.55200000, -0.06000000, 0.00000000},
	9: {0.45890559, 0.54733333, -0.06044444, 0.00000000},
	10: {0.55211027, 0.55133333, -0.05988889, 0.00000000},
	11: {0.66052225, 0.54666667, -0.06033333, 0.00000000},
	12: {0.73537778, 0.55066667, -0.05977778, 0.00000000},
	13: {0.82852229, 0.54600000, -0.06022222, 0.00000000},
	14: {0.89047442, 0.55000000, -0.05966667, 0.00000000},
	15: {0.95261335, 0.55400000, -0.06011111, 0.00000000},
	16: {1.02495177, 0.54933333, -0.05955556, 0.00000000},
	17: {1.07872245, 0.55333333, -0.06000000, 0.00000000},
	18: {1.14898266, 0.54866667, -0.06044444, 0.00000000},
	19: {1.19089404, 0.55266667, -0.05988889, 0.00000000},
	20: {1.25528913, 0.54800000, -0.06033333, 0.00000000},
	21: {1.29192346, 0.55200000, -0.05977778, 0.00000000},
	22: {1.35154527, 0.54733333, -0.06022222, 0.00000000},
	23: {1.38384119, 0.55133333, -0.05966667, 0.00000000},
	24: {1.43950260, 0.54666667, -0.06011111, 0.00000000},
	25: {1.46816876, 0.55066667, -0.05955556, 0.00000000},
	26: {1.52049127, 0.54600000, -0.06000000, 0.00000000},
	27: {1.55137765, 0.55000000, -0.06044444, 0.00000000},
	28: {1.57558946, 0.55400000, -0.05988889, 0.00000000},
	29: {1.62378258, 0.54933333, -0.06033333, 0.00000000},
	30: {1.64552829, 0.55333333, -0.05977778, 0.00000000},
	31: {1.69141991, 0.54866667, -0.06022222, 0.00000000},
	32: {1.71101277, 0.55266667, -0.05966667, 0.00000000},
	33: {1.75488622, 0.54800000, -0.06011111, 0.00000000},
	34: {1.77258334, 0.55200000, -0.05955556, 0.00000000},
	35: {1.81467268, 0.54733333, -0.06000000, 0.00000000},
	36: {1.83598961, 0.55133333, -0.06044444, 0.00000000},
	37: {1.87118849, 0.54666667, -0.05988889, 0.00000000},
	38: {1.89100279, 0.55066667, -0.06033333, 0.00000000},
	39: {1.92477818, 0.54600000, -0.05977778, 0.00000000},
	40: {1.94324204, 0.55000000, -0.06022222, 0.00000000},
	41: {1.95577882, 0.55400000, -0.05966667, 0.00000000},
	42: {1.99297816, 0.54933333, -0.06011111, 0.00000000},
	43: {2.00435282, 0.55333333, -0.05955556, 0.00000000},
	44: {2.04044414, 0.54866667, -0.06000000, 0.00000000},
	45: {2.05606305, 0.55266667, -0.06044444, 0.00000000},
	46: {2.08584186, 0.54800000, -0.05988889, 0.00000000},
	47: {2.10049412, 0.55200000, -0.06033333, 0.00000000},
	48: {2.12934743, 0.54733333, -0.05977778, 0.00000000},
	49: {2.14311277, 0.55133333, -0.06022222, 0.00000000},
	50: {2.17111538, 0.54666667, -0.05966667, 0.00000000},
	51: {2.18406407, 0.55066667, -0.06011111, 0.00000000},
	52: {2.21128205, 0.54600000, -0.05955556, 0.00000000},
	53: {2.22347630, 0.55000000, -0.06000000, 0.00000000},
	54: {2.23531449, 0.55400000, -0.06044444, 0.00000000},
	55: {2.26146353, 0.54933333, -0.05988889, 0.00000000},
	56: {2.27262810, 0.55333333, -0.06033333, 0.00000000},
	57: {2.29812757, 0.54866667, -0.05977778, 0.00000000},
	58: {2.30866537, 0.55266667, -0.06022222, 0.00000000},
	59: {2.33355970, 0.54800000, -0.05966667, 0.00000000},
	60: {2.34351288, 0.55200000, -0.06011111, 0.00000000},
	61: {2.36784208, 0.54733333, -0.05955556, 0.00000000},
	62: {2.37724866, 0.55133333, -0.06000000, 0.00000000},
	63: {2.40635080, 0.54666667, -0.06044444, 0.00000000},
	64: {2.40994332, 0.55066667, -0.05988889, 0.00000000},
	65: {2.43854930, 0.54600000, -0.06033333, 0.00000000},
	66: {2.44166093, 0.55000000, -0.05977778, 0.00000000},
	67: {2.44984487, 0.55400000, -0.06022222, 0.00000000},
	68: {2.47245985, 0.54933333, -0.05966667, 0.00000000},
	69: {2.48020471, 0.55333333, -0.06011111, 0.00000000},
	70: {2.50239335, 0.54866667, -0.05955556, 0.00000000},
	71: {2.50972404, 0.55266667, -0.06000000, 0.00000000},
	72: {2.53681208, 0.54800000, -0.06044444, 0.00000000},
	73: {2.53844956, 0.55200000, -0.05988889, 0.00000000},
	74: {2.56515701, 0.54733333, -0.06033333, 0.00000000},
	75: {2.56642419, 0.55133333, -0.05977778, 0.00000000},
	76: {2.59277121, 0.54666667, -0.06022222, 0.00000000},
	77: {2.59368746, 0.55066667, -0.05966667, 0.00000000},
	78: {2.61969266, 0.54600000, -0.06011111, 0.00000000},
	79: {2.62027584, 0.55000000, -0.05955556, 0.00000000},
	80: {2.62600068, 0.55400000, -0.06000000, 0.00000000},
	81: {2.65152500, 0.54933333, -0.06044444, 0.00000000},
	82: {2.65163925, 0.55333333, -0.05988889, 0.00000000},
	83: {2.67686241, 0.54866667, -0.06033333, 0.00000000},
	86: {2.70115922, 0.55200000, -0.05966667, 0.00000000},
	90: {2.75381540, 0.55066667, -0.06044444, 0.00000000},
	92: {2.77674027, 0.55000000, -0.06033333, 0.00000000},
	94: {2.79919243, 0.54933333, -0.06022222, 0.00000000},
}

// 荧光产额（K 系 / L 系）
var kYieldTable = [zTableSize]float64{
	1: 8.92856e-07,
	2: 1.42855e-05,
	3: 7.23162e-05,
	4: 0.000228519,
	5: 0.000557724,
	6: 0.00115581,
	7: 0.00213916,
	8: 0.00364382,
	9: 0.00582392,
	10: 0.00884956,
	11: 0.0129036,
	12: 0.0181777,
	13: 0.0248668,
	14: 0.0331625,
	15: 0.0432461,
	16: 0.0552796,
	17: 0.0693972,
	18: 0.0856964,
	19: 0.10423,
	20: 0.125,
	21: 0.147953,
	22: 0.172978,
	23: 0.199909,
	24: 0.228531,
	25: 0.258585,
	26: 0.28978,
	27: 0.321804,
	28: 0.354339,
	29: 0.387067,
	30: 0.419689,
	31: 0.451926,
	32: 0.483532,
	33: 0.514294,
	34: 0.544036,
	35: 0.572621,
	36: 0.599945,
	37: 0.625939,
	38: 0.650561,
	39: 0.673797,
	40: 0.695652,
	41: 0.716151,
	42: 0.735331,
	43: 0.753239,
	44: 0.769931,
	45: 0.785466,
	46: 0.799909,
	47: 0.813323,
	48: 0.825774,
	49: 0.837323,
	50: 0.848033,
	51: 0.857962,
	52: 0.867167,
	53: 0.8757,
	54: 0.883613,
	55: 0.890951,
	56: 0.897759,
	57: 0.904077,
	58: 0.909942,
	59: 0.915391,
	60: 0.920455,
	61: 0.925163,
	62: 0.929544,
	63: 0.933622,
	64: 0.93742,
	65: 0.940961,
	66: 0.944264,
	67: 0.947346,
	68: 0.950225,
	69: 0.952916,
	70: 0.955432,
	71: 0.957786,
	72: 0.959991,
	73: 0.962057,
	74: 0.963995,
	75: 0.965813,
	76: 0.967519,
	77: 0.969123,
	78: 0.970631,
	79: 0.972049,
	80: 0.973384,
	81: 0.974642,
	82: 0.975827,
	83: 0.976944,
	86: 0.979936,
	90: 0.983216,
	92: 0.984607,
	94: 0.985858,
}

var lYieldTable = [zTableSize]float64{
	3: 1.26562e-06,
	4: 3.99998e-06,
	5: 9.76553e-06,
	6: 2.02496e-05,
	7: 3.75142e-05,
	8: 6.39959e-05,
	9: 0.000102505,
	10: 0.000156226,
	11: 0.000228713,
	12: 0.000323895,
	13: 0.000446067,
	14: 0.00059989,
	15: 0.00079039,
	16: 0.00102295,
	17: 0.00130331,
	18: 0.00163756,
	19: 0.00203213,
	20: 0.00249377,
	21: 0.00302956,
	22: 0.0036469,
	23: 0.00435348,
	24: 0.00515726,
	25: 0.00606649,
	26: 0.00708963,
	27: 0.00823538,
	28: 0.00951264,
	29: 0.0109305,
	30: 0.0124981,
	31: 0.0142248,
	32: 0.0161199,
	33: 0.0181929,
	34: 0.0204532,
	35: 0.0229101,
	36: 0.0255729,
	37: 0.0284506,
	38: 0.0315523,
	39: 0.0348865,
	40: 0.0384615,
	41: 0.0422855,
	42: 0.0463659,
	43: 0.0507099,
	44: 0.055324,
	45: 0.0602142,
	46: 0.0653858,
	47: 0.0708435,
	48: 0.0765912,
	49: 0.0826319,
	50: 0.088968,
	51: 0.0956007,
	52: 0.102531,
	53: 0.109757,
	54: 0.117279,
	55: 0.125093,
	56: 0.133196,
	57: 0.141585,
	58: 0.150253,
	59: 0.159193,
	60: 0.168399,
	61: 0.177862,
	62: 0.187573,
	63: 0.197522,
	64: 0.207697,
	65: 0.218088,
	66: 0.228681,
	67: 0.239463,
	68: 0.250422,
	69: 0.261542,
	70: 0.27281,
	71: 0.28421,
	72: 0.295727,
	73: 0.307346,
	74: 0.319052,
	75: 0.330828,
	76: 0.342661,
	77: 0.354533,
	78: 0.366431,
	79: 0.378339,
	80: 0.390244,
	81: 0.40213,
	82: 0.413985,
	83: 0.425794,
	86: 0.460829,
	90: 0.506211,
	92: 0.52816,
	94: 0.549533,
}
